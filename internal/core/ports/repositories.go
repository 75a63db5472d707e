// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/akarpov/grocery-be/internal/core/domain"
)

// Repository ports are implemented by the database adapter. Finders
// return (nil, nil) when the row does not exist; services translate the
// absence into domain.NotFoundError.

// ShopRepository defines the persistence port for shops.
type ShopRepository interface {
	Save(ctx context.Context, shop *domain.Shop) error
	FindByID(ctx context.Context, id int64) (*domain.Shop, error)
	FindByName(ctx context.Context, name string) (*domain.Shop, error)
	FindAll(ctx context.Context) ([]domain.Shop, error)
	FindPage(ctx context.Context, req PageRequest) ([]domain.Shop, int64, error)
	Delete(ctx context.Context, id int64) error
}

// ItemRepository defines the persistence port for the item catalog.
type ItemRepository interface {
	Save(ctx context.Context, item *domain.Item) error
	FindByID(ctx context.Context, id int64) (*domain.Item, error)
	FindByName(ctx context.Context, name string) (*domain.Item, error)
	FindAll(ctx context.Context) ([]domain.Item, error)
	FindPage(ctx context.Context, req PageRequest) ([]domain.Item, int64, error)
	Delete(ctx context.Context, id int64) error
}

// VisitRepository defines the persistence port for shop visits.
type VisitRepository interface {
	Save(ctx context.Context, visit *domain.Visit) error
	FindByID(ctx context.Context, id int64) (*domain.Visit, error)
	FindAll(ctx context.Context) ([]domain.Visit, error)
	FindPage(ctx context.Context, req PageRequest) ([]domain.Visit, int64, error)
	FindAllByShop(ctx context.Context, shopID int64) ([]domain.Visit, error)
	Delete(ctx context.Context, id int64) error
}

// PurchaseRepository defines the persistence port for purchase records.
// At most one row exists per (visit, item) pair.
type PurchaseRepository interface {
	Save(ctx context.Context, purchase *domain.Purchase) error
	FindOneByVisitAndItem(ctx context.Context, visitID, itemID int64) (*domain.Purchase, error)
	FindAllByVisit(ctx context.Context, visitID int64) ([]domain.Purchase, error)
	FindPageByVisit(ctx context.Context, req PageRequest, visitID int64) ([]domain.Purchase, int64, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllByVisit(ctx context.Context, visitID int64) error
}

// ShoppingListRepository defines the persistence port for shopping lists.
type ShoppingListRepository interface {
	Save(ctx context.Context, list *domain.ShoppingList) error
	FindByID(ctx context.Context, id int64) (*domain.ShoppingList, error)
	FindByName(ctx context.Context, name string) (*domain.ShoppingList, error)
	FindAll(ctx context.Context) ([]domain.ShoppingList, error)
	FindPage(ctx context.Context, req PageRequest) ([]domain.ShoppingList, int64, error)
	Delete(ctx context.Context, id int64) error
}

// ShoppingListItemRepository defines the persistence port for shopping
// list lines.
type ShoppingListItemRepository interface {
	Save(ctx context.Context, line *domain.ShoppingListItem) error
	FindByID(ctx context.Context, id int64) (*domain.ShoppingListItem, error)
	FindAllByList(ctx context.Context, listID int64) ([]domain.ShoppingListItem, error)
	FindPageByList(ctx context.Context, req PageRequest, listID int64) ([]domain.ShoppingListItem, int64, error)
	FindOneByListAndItem(ctx context.Context, listID, itemID int64) (*domain.ShoppingListItem, error)
	Delete(ctx context.Context, id int64) error
}
