// internal/core/services/shop.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
)

// ShopService handles shop catalog business logic
type ShopService struct {
	repo   ports.ShopRepository
	logger *slog.Logger
}

// Statically assert that *ShopService implements the ShopService interface.
var _ ports.ShopService = (*ShopService)(nil)

// NewShopService creates a new shop service
func NewShopService(repo ports.ShopRepository, logger *slog.Logger) *ShopService {
	return &ShopService{
		repo:   repo,
		logger: logger.With(slog.String("service", "shop")),
	}
}

// GetShops retrieves every shop.
func (s *ShopService) GetShops(ctx context.Context) ([]domain.Shop, error) {
	shops, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return shops, nil
}

// GetShopsPage retrieves one page of shops.
func (s *ShopService) GetShopsPage(ctx context.Context, req ports.PageRequest) (*ports.Page[domain.Shop], error) {
	req = req.Normalize()

	shops, total, err := s.repo.FindPage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops page: %w", err)
	}
	return ports.NewPage(shops, req, total), nil
}

// GetShopByID retrieves a single shop.
func (s *ShopService) GetShopByID(ctx context.Context, id int64) (*domain.Shop, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	if shop == nil {
		return nil, domain.NewNotFound("shop", id)
	}
	return shop, nil
}

// GetShopByName retrieves a shop by its unique name.
func (s *ShopService) GetShopByName(ctx context.Context, name string) (*domain.Shop, error) {
	shop, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get shop by name: %w", err)
	}
	if shop == nil {
		return nil, fmt.Errorf("shop %q: %w", name, domain.ErrNotFound)
	}
	return shop, nil
}

// CreateShop creates a new shop.
func (s *ShopService) CreateShop(ctx context.Context, name string) (*domain.Shop, error) {
	shop := &domain.Shop{Name: name}
	if err := shop.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, shop); err != nil {
		return nil, fmt.Errorf("failed to save shop: %w", err)
	}

	s.logger.InfoContext(ctx, "created shop",
		slog.Int64("shop_id", shop.ID),
		slog.String("name", shop.Name))

	return shop, nil
}

// UpdateShop renames an existing shop.
func (s *ShopService) UpdateShop(ctx context.Context, id int64, name string) (*domain.Shop, error) {
	shop, err := s.GetShopByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shop.Name = name
	if err := shop.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, shop); err != nil {
		return nil, fmt.Errorf("failed to update shop: %w", err)
	}

	s.logger.InfoContext(ctx, "updated shop", slog.Int64("shop_id", id))

	return shop, nil
}

// DeleteShop removes a shop. Shops with recorded visits are protected by
// a restricting foreign key and cannot be removed.
func (s *ShopService) DeleteShop(ctx context.Context, id int64) error {
	if _, err := s.GetShopByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shop: %w", err)
	}

	s.logger.InfoContext(ctx, "deleted shop", slog.Int64("shop_id", id))

	return nil
}
