// internal/core/services/shopping_list_item.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
)

// ShoppingListItemService handles shopping list line business logic
type ShoppingListItemService struct {
	lines  ports.ShoppingListItemRepository
	lists  ports.ShoppingListRepository
	items  ports.ItemRepository
	logger *slog.Logger
}

var _ ports.ShoppingListItemService = (*ShoppingListItemService)(nil)

// NewShoppingListItemService creates a new shopping list item service
func NewShoppingListItemService(
	lines ports.ShoppingListItemRepository,
	lists ports.ShoppingListRepository,
	items ports.ItemRepository,
	logger *slog.Logger,
) *ShoppingListItemService {
	return &ShoppingListItemService{
		lines:  lines,
		lists:  lists,
		items:  items,
		logger: logger.With(slog.String("service", "shopping_list_item")),
	}
}

// GetListItems retrieves all lines of a shopping list.
func (s *ShoppingListItemService) GetListItems(ctx context.Context, listID int64) ([]domain.ShoppingListItem, error) {
	if err := s.ensureList(ctx, listID); err != nil {
		return nil, err
	}

	lines, err := s.lines.FindAllByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping list items: %w", err)
	}
	return lines, nil
}

// GetListItemsPage retrieves one page of a shopping list's lines.
func (s *ShoppingListItemService) GetListItemsPage(ctx context.Context, req ports.PageRequest, listID int64) (*ports.Page[domain.ShoppingListItem], error) {
	if err := s.ensureList(ctx, listID); err != nil {
		return nil, err
	}

	req = req.Normalize()

	lines, total, err := s.lines.FindPageByList(ctx, req, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping list items page: %w", err)
	}
	return ports.NewPage(lines, req, total), nil
}

// GetListItemByID retrieves a single shopping list line.
func (s *ShoppingListItemService) GetListItemByID(ctx context.Context, id int64) (*domain.ShoppingListItem, error) {
	line, err := s.lines.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list item: %w", err)
	}
	if line == nil {
		return nil, domain.NewNotFound("shopping list item", id)
	}
	return line, nil
}

// GetNotAddedItems lists every catalog item not yet on the shopping
// list.
func (s *ShoppingListItemService) GetNotAddedItems(ctx context.Context, listID int64) ([]domain.Item, error) {
	if err := s.ensureList(ctx, listID); err != nil {
		return nil, err
	}

	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	notAdded := make([]domain.Item, 0, len(items))
	for _, item := range items {
		line, err := s.lines.FindOneByListAndItem(ctx, listID, item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to find shopping list item: %w", err)
		}
		if line == nil {
			notAdded = append(notAdded, item)
		}
	}
	return notAdded, nil
}

// CreateListItem puts an item on a shopping list. An item can appear on
// a list only once.
func (s *ShoppingListItemService) CreateListItem(ctx context.Context, listID, itemID, quantity int64) (*domain.ShoppingListItem, error) {
	if err := s.ensureList(ctx, listID); err != nil {
		return nil, err
	}

	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, domain.NewNotFound("item", itemID)
	}

	existing, err := s.lines.FindOneByListAndItem(ctx, listID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find shopping list item: %w", err)
	}
	if existing != nil {
		return nil, domain.NewInvalidArgument("item is already on the shopping list")
	}

	line := &domain.ShoppingListItem{
		ShoppingListID: listID,
		ItemID:         itemID,
		Quantity:       quantity,
	}
	if err := line.Validate(); err != nil {
		return nil, err
	}

	if err := s.lines.Save(ctx, line); err != nil {
		return nil, fmt.Errorf("failed to save shopping list item: %w", err)
	}

	s.logger.InfoContext(ctx, "added shopping list item",
		slog.Int64("shopping_list_id", listID),
		slog.Int64("item_id", itemID))

	return line, nil
}

// UpdateListItem changes the quantity of an existing line.
func (s *ShoppingListItemService) UpdateListItem(ctx context.Context, id, quantity int64) (*domain.ShoppingListItem, error) {
	line, err := s.GetListItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	line.Quantity = quantity
	if err := line.Validate(); err != nil {
		return nil, err
	}

	if err := s.lines.Save(ctx, line); err != nil {
		return nil, fmt.Errorf("failed to update shopping list item: %w", err)
	}

	s.logger.InfoContext(ctx, "updated shopping list item", slog.Int64("id", id))

	return line, nil
}

// DeleteListItem removes a line from its shopping list.
func (s *ShoppingListItemService) DeleteListItem(ctx context.Context, id int64) error {
	if _, err := s.GetListItemByID(ctx, id); err != nil {
		return err
	}

	if err := s.lines.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shopping list item: %w", err)
	}

	s.logger.InfoContext(ctx, "deleted shopping list item", slog.Int64("id", id))

	return nil
}

func (s *ShoppingListItemService) ensureList(ctx context.Context, listID int64) error {
	list, err := s.lists.FindByID(ctx, listID)
	if err != nil {
		return fmt.Errorf("failed to get shopping list: %w", err)
	}
	if list == nil {
		return domain.NewNotFound("shopping list", listID)
	}
	return nil
}
