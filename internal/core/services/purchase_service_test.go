// internal/core/services/purchase_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/services"
	"github.com/akarpov/grocery-be/test/helpers"
	"github.com/akarpov/grocery-be/test/mocks"
)

type purchaseMocks struct {
	purchases *mocks.MockPurchaseRepository
	visits    *mocks.MockVisitRepository
	items     *mocks.MockItemRepository
}

func newPurchaseService(t *testing.T) (*services.PurchaseService, purchaseMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := purchaseMocks{
		purchases: mocks.NewMockPurchaseRepository(ctrl),
		visits:    mocks.NewMockVisitRepository(ctrl),
		items:     mocks.NewMockItemRepository(ctrl),
	}
	service := services.NewPurchaseService(m.purchases, m.visits, m.items, helpers.TestLogger())
	return service, m
}

func expectVisitAndItem(m purchaseMocks, visitID, itemID int64) {
	m.visits.EXPECT().
		FindByID(gomock.Any(), visitID).
		Return(&domain.Visit{ID: visitID, ShopID: 1}, nil)
	m.items.EXPECT().
		FindByID(gomock.Any(), itemID).
		Return(&domain.Item{ID: itemID, Name: "Milk"}, nil)
}

func TestPurchaseService_BuyItem(t *testing.T) {
	price := decimal.NewFromFloat(2.50)

	tests := []struct {
		name          string
		quantity      int64
		price         *decimal.Decimal
		setupMocks    func(purchaseMocks)
		check         func(*testing.T, *domain.Purchase)
		expectedError error
	}{
		{
			name:     "first_buy_creates_record",
			quantity: 2,
			price:    &price,
			setupMocks: func(m purchaseMocks) {
				expectVisitAndItem(m, 1, 10)
				m.purchases.EXPECT().
					FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
					Return(nil, nil)
				m.purchases.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, p *domain.Purchase) {
				assert.Equal(t, int64(2), p.Quantity)
				require.NotNil(t, p.Price)
				assert.True(t, p.Price.Equal(price))
			},
		},
		{
			name:     "repeat_buy_blends_price",
			quantity: 1,
			price:    decimalPtr(20),
			setupMocks: func(m purchaseMocks) {
				expectVisitAndItem(m, 1, 10)
				m.purchases.EXPECT().
					FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
					Return(&domain.Purchase{
						ID: 5, VisitID: 1, ItemID: 10,
						Quantity: 1, Price: decimalPtr(10),
					}, nil)
				m.purchases.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, p *domain.Purchase) {
				assert.Equal(t, int64(2), p.Quantity)
				require.NotNil(t, p.Price)
				assert.Equal(t, "15", p.Price.String())
			},
		},
		{
			name:     "unpriced_buy_keeps_existing_price",
			quantity: 3,
			price:    nil,
			setupMocks: func(m purchaseMocks) {
				expectVisitAndItem(m, 1, 10)
				m.purchases.EXPECT().
					FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
					Return(&domain.Purchase{
						ID: 5, VisitID: 1, ItemID: 10,
						Quantity: 1, Price: decimalPtr(10),
					}, nil)
				m.purchases.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, p *domain.Purchase) {
				assert.Equal(t, int64(4), p.Quantity)
				require.NotNil(t, p.Price)
				assert.Equal(t, "10", p.Price.String())
			},
		},
		{
			name:     "rejects_zero_quantity",
			quantity: 0,
			price:    &price,
			setupMocks: func(m purchaseMocks) {
				expectVisitAndItem(m, 1, 10)
				m.purchases.EXPECT().
					FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
					Return(nil, nil)
			},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:     "visit_not_found",
			quantity: 1,
			price:    &price,
			setupMocks: func(m purchaseMocks) {
				m.visits.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:     "item_not_found",
			quantity: 1,
			price:    &price,
			setupMocks: func(m purchaseMocks) {
				m.visits.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(&domain.Visit{ID: 1, ShopID: 1}, nil)
				m.items.EXPECT().
					FindByID(gomock.Any(), int64(10)).
					Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:     "repository_save_error",
			quantity: 1,
			price:    &price,
			setupMocks: func(m purchaseMocks) {
				expectVisitAndItem(m, 1, 10)
				m.purchases.EXPECT().
					FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
					Return(nil, nil)
				m.purchases.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(errors.New("database connection failed"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newPurchaseService(t)
			tt.setupMocks(m)

			result, err := service.BuyItem(context.Background(), 1, 10, tt.quantity, tt.price)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			if tt.check == nil {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
			tt.check(t, result)
		})
	}
}

func TestPurchaseService_ReturnItem(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int64
		setupMocks    func(purchaseMocks)
		expectNil     bool
		expectedQty   int64
		expectedError error
	}{
		{
			name:     "partial_return_keeps_record",
			quantity: 1,
			setupMocks: func(m purchaseMocks) {
				expectVisitAndItem(m, 1, 10)
				m.purchases.EXPECT().
					FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
					Return(&domain.Purchase{ID: 5, VisitID: 1, ItemID: 10, Quantity: 3}, nil)
				m.purchases.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *domain.Purchase) error {
						assert.Equal(t, int64(2), p.Quantity)
						return nil
					})
			},
			expectedQty: 2,
		},
		{
			name:     "last_unit_return_deletes_record",
			quantity: 1,
			setupMocks: func(m purchaseMocks) {
				expectVisitAndItem(m, 1, 10)
				m.purchases.EXPECT().
					FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
					Return(&domain.Purchase{ID: 5, VisitID: 1, ItemID: 10, Quantity: 1}, nil)
				m.purchases.EXPECT().
					Delete(gomock.Any(), int64(5)).
					Return(nil)
			},
			expectNil: true,
		},
		{
			name:     "rejects_return_beyond_bought_quantity",
			quantity: 5,
			setupMocks: func(m purchaseMocks) {
				expectVisitAndItem(m, 1, 10)
				m.purchases.EXPECT().
					FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
					Return(&domain.Purchase{ID: 5, VisitID: 1, ItemID: 10, Quantity: 2}, nil)
			},
			expectedError: domain.ErrInvalidArgument,
		},
		{
			name:     "no_purchase_for_pair",
			quantity: 1,
			setupMocks: func(m purchaseMocks) {
				expectVisitAndItem(m, 1, 10)
				m.purchases.EXPECT().
					FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
					Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newPurchaseService(t)
			tt.setupMocks(m)

			result, err := service.ReturnItem(context.Background(), 1, 10, tt.quantity)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.expectedQty, result.Quantity)
		})
	}
}

func TestPurchaseService_UpdatePrice(t *testing.T) {
	t.Run("overwrites_price_without_blending", func(t *testing.T) {
		service, m := newPurchaseService(t)

		expectVisitAndItem(m, 1, 10)
		m.purchases.EXPECT().
			FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
			Return(&domain.Purchase{
				ID: 5, VisitID: 1, ItemID: 10,
				Quantity: 4, Price: decimalPtr(10),
			}, nil)
		m.purchases.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)

		result, err := service.UpdatePrice(context.Background(), 1, 10, decimalPtr(20))

		require.NoError(t, err)
		require.NotNil(t, result.Price)
		assert.Equal(t, "20", result.Price.String())
		assert.Equal(t, int64(4), result.Quantity)
	})

	t.Run("rejects_non_positive_price", func(t *testing.T) {
		service, m := newPurchaseService(t)

		expectVisitAndItem(m, 1, 10)
		m.purchases.EXPECT().
			FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
			Return(&domain.Purchase{ID: 5, VisitID: 1, ItemID: 10, Quantity: 1}, nil)

		zero := decimal.Zero
		_, err := service.UpdatePrice(context.Background(), 1, 10, &zero)

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestPurchaseService_GetNotPurchasedItems(t *testing.T) {
	service, m := newPurchaseService(t)

	m.visits.EXPECT().
		FindByID(gomock.Any(), int64(1)).
		Return(&domain.Visit{ID: 1, ShopID: 1}, nil)
	m.items.EXPECT().
		FindAll(gomock.Any()).
		Return([]domain.Item{
			{ID: 10, Name: "Milk"},
			{ID: 11, Name: "Bread"},
			{ID: 12, Name: "Eggs"},
		}, nil)
	m.purchases.EXPECT().
		FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
		Return(nil, nil)
	m.purchases.EXPECT().
		FindOneByVisitAndItem(gomock.Any(), int64(1), int64(11)).
		Return(&domain.Purchase{ID: 5, VisitID: 1, ItemID: 11, Quantity: 1}, nil)
	m.purchases.EXPECT().
		FindOneByVisitAndItem(gomock.Any(), int64(1), int64(12)).
		Return(nil, nil)

	items, err := service.GetNotPurchasedItems(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, "Eggs", items[1].Name)
}

func TestPurchaseService_BuySequenceAveragesPrices(t *testing.T) {
	// Two priced buys of one unit each at 10 and 20 settle at 15.00.
	service, m := newPurchaseService(t)

	var stored *domain.Purchase

	m.visits.EXPECT().
		FindByID(gomock.Any(), int64(1)).
		Return(&domain.Visit{ID: 1, ShopID: 1}, nil).
		Times(2)
	m.items.EXPECT().
		FindByID(gomock.Any(), int64(10)).
		Return(&domain.Item{ID: 10, Name: "Milk"}, nil).
		Times(2)
	m.purchases.EXPECT().
		FindOneByVisitAndItem(gomock.Any(), int64(1), int64(10)).
		DoAndReturn(func(context.Context, int64, int64) (*domain.Purchase, error) {
			return stored, nil
		}).
		Times(2)
	m.purchases.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *domain.Purchase) error {
			copied := *p
			stored = &copied
			return nil
		}).
		Times(2)

	_, err := service.BuyItem(context.Background(), 1, 10, 1, decimalPtr(10))
	require.NoError(t, err)

	result, err := service.BuyItem(context.Background(), 1, 10, 1, decimalPtr(20))
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Quantity)
	require.NotNil(t, result.Price)
	assert.Equal(t, "15", result.Price.String())
}

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
