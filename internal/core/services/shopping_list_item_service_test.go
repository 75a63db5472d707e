// internal/core/services/shopping_list_item_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/services"
	"github.com/akarpov/grocery-be/test/helpers"
	"github.com/akarpov/grocery-be/test/mocks"
)

type listItemMocks struct {
	lines *mocks.MockShoppingListItemRepository
	lists *mocks.MockShoppingListRepository
	items *mocks.MockItemRepository
}

func newListItemService(t *testing.T) (*services.ShoppingListItemService, listItemMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := listItemMocks{
		lines: mocks.NewMockShoppingListItemRepository(ctrl),
		lists: mocks.NewMockShoppingListRepository(ctrl),
		items: mocks.NewMockItemRepository(ctrl),
	}
	service := services.NewShoppingListItemService(m.lines, m.lists, m.items, helpers.TestLogger())
	return service, m
}

func expectList(m listItemMocks, listID int64) {
	m.lists.EXPECT().
		FindByID(gomock.Any(), listID).
		Return(&domain.ShoppingList{ID: listID, Name: "Weekly Groceries"}, nil)
}

func TestShoppingListItemService_CreateListItem(t *testing.T) {
	t.Run("adds_item_to_list", func(t *testing.T) {
		service, m := newListItemService(t)

		expectList(m, 2)
		m.items.EXPECT().
			FindByID(gomock.Any(), int64(10)).
			Return(&domain.Item{ID: 10, Name: "Milk"}, nil)
		m.lines.EXPECT().
			FindOneByListAndItem(gomock.Any(), int64(2), int64(10)).
			Return(nil, nil)
		m.lines.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, line *domain.ShoppingListItem) error {
				line.ID = 4
				return nil
			})

		line, err := service.CreateListItem(context.Background(), 2, 10, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(4), line.ID)
		assert.Equal(t, int64(2), line.ShoppingListID)
		assert.Equal(t, int64(10), line.ItemID)
		assert.Equal(t, int64(3), line.Quantity)
	})

	t.Run("rejects_duplicate_line", func(t *testing.T) {
		service, m := newListItemService(t)

		expectList(m, 2)
		m.items.EXPECT().
			FindByID(gomock.Any(), int64(10)).
			Return(&domain.Item{ID: 10, Name: "Milk"}, nil)
		m.lines.EXPECT().
			FindOneByListAndItem(gomock.Any(), int64(2), int64(10)).
			Return(&domain.ShoppingListItem{ID: 4, ShoppingListID: 2, ItemID: 10, Quantity: 1}, nil)

		_, err := service.CreateListItem(context.Background(), 2, 10, 1)

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		service, m := newListItemService(t)

		expectList(m, 2)
		m.items.EXPECT().
			FindByID(gomock.Any(), int64(10)).
			Return(&domain.Item{ID: 10, Name: "Milk"}, nil)
		m.lines.EXPECT().
			FindOneByListAndItem(gomock.Any(), int64(2), int64(10)).
			Return(nil, nil)

		_, err := service.CreateListItem(context.Background(), 2, 10, 0)

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("list_not_found", func(t *testing.T) {
		service, m := newListItemService(t)

		m.lists.EXPECT().
			FindByID(gomock.Any(), int64(99)).
			Return(nil, nil)

		_, err := service.CreateListItem(context.Background(), 99, 10, 1)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("item_not_found", func(t *testing.T) {
		service, m := newListItemService(t)

		expectList(m, 2)
		m.items.EXPECT().
			FindByID(gomock.Any(), int64(99)).
			Return(nil, nil)

		_, err := service.CreateListItem(context.Background(), 2, 99, 1)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestShoppingListItemService_UpdateListItem(t *testing.T) {
	t.Run("changes_quantity", func(t *testing.T) {
		service, m := newListItemService(t)

		m.lines.EXPECT().
			FindByID(gomock.Any(), int64(4)).
			Return(&domain.ShoppingListItem{ID: 4, ShoppingListID: 2, ItemID: 10, Quantity: 1}, nil)
		m.lines.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)

		line, err := service.UpdateListItem(context.Background(), 4, 5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), line.Quantity)
	})

	t.Run("rejects_zero_quantity", func(t *testing.T) {
		service, m := newListItemService(t)

		m.lines.EXPECT().
			FindByID(gomock.Any(), int64(4)).
			Return(&domain.ShoppingListItem{ID: 4, ShoppingListID: 2, ItemID: 10, Quantity: 1}, nil)

		_, err := service.UpdateListItem(context.Background(), 4, 0)

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("line_not_found", func(t *testing.T) {
		service, m := newListItemService(t)

		m.lines.EXPECT().
			FindByID(gomock.Any(), int64(99)).
			Return(nil, nil)

		_, err := service.UpdateListItem(context.Background(), 99, 5)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestShoppingListItemService_GetNotAddedItems(t *testing.T) {
	service, m := newListItemService(t)

	expectList(m, 2)
	m.items.EXPECT().
		FindAll(gomock.Any()).
		Return([]domain.Item{
			{ID: 10, Name: "Milk"},
			{ID: 11, Name: "Bread"},
		}, nil)
	m.lines.EXPECT().
		FindOneByListAndItem(gomock.Any(), int64(2), int64(10)).
		Return(&domain.ShoppingListItem{ID: 4, ShoppingListID: 2, ItemID: 10, Quantity: 1}, nil)
	m.lines.EXPECT().
		FindOneByListAndItem(gomock.Any(), int64(2), int64(11)).
		Return(nil, nil)

	items, err := service.GetNotAddedItems(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bread", items[0].Name)
}

func TestShoppingListItemService_DeleteListItem(t *testing.T) {
	t.Run("deletes_line", func(t *testing.T) {
		service, m := newListItemService(t)

		m.lines.EXPECT().
			FindByID(gomock.Any(), int64(4)).
			Return(&domain.ShoppingListItem{ID: 4, ShoppingListID: 2, ItemID: 10, Quantity: 1}, nil)
		m.lines.EXPECT().
			Delete(gomock.Any(), int64(4)).
			Return(nil)

		err := service.DeleteListItem(context.Background(), 4)

		require.NoError(t, err)
	})

	t.Run("line_not_found", func(t *testing.T) {
		service, m := newListItemService(t)

		m.lines.EXPECT().
			FindByID(gomock.Any(), int64(99)).
			Return(nil, nil)

		err := service.DeleteListItem(context.Background(), 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
