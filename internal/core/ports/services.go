// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/akarpov/grocery-be/internal/core/domain"
)

// Service ports are implemented by the application services and consumed
// by the HTTP layer.

// ShopService manages the shop catalog.
type ShopService interface {
	GetShops(ctx context.Context) ([]domain.Shop, error)
	GetShopsPage(ctx context.Context, req PageRequest) (*Page[domain.Shop], error)
	GetShopByID(ctx context.Context, id int64) (*domain.Shop, error)
	GetShopByName(ctx context.Context, name string) (*domain.Shop, error)
	CreateShop(ctx context.Context, name string) (*domain.Shop, error)
	UpdateShop(ctx context.Context, id int64, name string) (*domain.Shop, error)
	DeleteShop(ctx context.Context, id int64) error
}

// ItemService manages the item catalog.
type ItemService interface {
	GetItems(ctx context.Context) ([]domain.Item, error)
	GetItemsPage(ctx context.Context, req PageRequest) (*Page[domain.Item], error)
	GetItemByID(ctx context.Context, id int64) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	CreateItem(ctx context.Context, name string) (*domain.Item, error)
	UpdateItem(ctx context.Context, id int64, name string) (*domain.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// VisitService manages the visit lifecycle.
type VisitService interface {
	GetVisits(ctx context.Context) ([]domain.Visit, error)
	GetVisitsPage(ctx context.Context, req PageRequest) (*Page[domain.Visit], error)
	GetVisitByID(ctx context.Context, id int64) (*domain.Visit, error)
	GetVisitsByShop(ctx context.Context, shopID int64) ([]domain.Visit, error)
	CreateVisit(ctx context.Context, shopID int64) (*domain.Visit, error)
	StartVisit(ctx context.Context, id int64) (*domain.Visit, error)
	CompleteVisit(ctx context.Context, id int64) (*domain.Visit, error)
	DeleteVisit(ctx context.Context, id int64) error
	GetVisitSummary(ctx context.Context, id int64) (*domain.VisitSummary, error)
}

// PurchaseService is the purchase accounting component. ReturnItem
// returns (nil, nil) when the last unit was returned and the record
// removed.
type PurchaseService interface {
	BuyItem(ctx context.Context, visitID, itemID, quantity int64, price *decimal.Decimal) (*domain.Purchase, error)
	ReturnItem(ctx context.Context, visitID, itemID, quantity int64) (*domain.Purchase, error)
	UpdatePrice(ctx context.Context, visitID, itemID int64, price *decimal.Decimal) (*domain.Purchase, error)
	GetNotPurchasedItems(ctx context.Context, visitID int64) ([]domain.Item, error)
	GetPurchases(ctx context.Context, visitID int64) ([]domain.Purchase, error)
	GetPurchasesPage(ctx context.Context, req PageRequest, visitID int64) (*Page[domain.Purchase], error)
}

// ShoppingListService manages named shopping lists.
type ShoppingListService interface {
	GetShoppingLists(ctx context.Context) ([]domain.ShoppingList, error)
	GetShoppingListsPage(ctx context.Context, req PageRequest) (*Page[domain.ShoppingList], error)
	GetShoppingListByID(ctx context.Context, id int64) (*domain.ShoppingList, error)
	GetShoppingListByName(ctx context.Context, name string) (*domain.ShoppingList, error)
	CreateShoppingList(ctx context.Context, name string) (*domain.ShoppingList, error)
	UpdateShoppingList(ctx context.Context, id int64, name string) (*domain.ShoppingList, error)
	DeleteShoppingList(ctx context.Context, id int64) error
}

// ShoppingListItemService manages the lines of a shopping list.
type ShoppingListItemService interface {
	GetListItems(ctx context.Context, listID int64) ([]domain.ShoppingListItem, error)
	GetListItemsPage(ctx context.Context, req PageRequest, listID int64) (*Page[domain.ShoppingListItem], error)
	GetListItemByID(ctx context.Context, id int64) (*domain.ShoppingListItem, error)
	GetNotAddedItems(ctx context.Context, listID int64) ([]domain.Item, error)
	CreateListItem(ctx context.Context, listID, itemID, quantity int64) (*domain.ShoppingListItem, error)
	UpdateListItem(ctx context.Context, id, quantity int64) (*domain.ShoppingListItem, error)
	DeleteListItem(ctx context.Context, id int64) error
}
