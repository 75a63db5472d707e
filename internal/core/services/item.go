// internal/core/services/item.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
)

// ItemService handles item catalog business logic
type ItemService struct {
	repo   ports.ItemRepository
	logger *slog.Logger
}

var _ ports.ItemService = (*ItemService)(nil)

// NewItemService creates a new item service
func NewItemService(repo ports.ItemRepository, logger *slog.Logger) *ItemService {
	return &ItemService{
		repo:   repo,
		logger: logger.With(slog.String("service", "item")),
	}
}

// GetItems retrieves the whole item catalog.
func (s *ItemService) GetItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// GetItemsPage retrieves one page of the item catalog.
func (s *ItemService) GetItemsPage(ctx context.Context, req ports.PageRequest) (*ports.Page[domain.Item], error) {
	req = req.Normalize()

	items, total, err := s.repo.FindPage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list items page: %w", err)
	}
	return ports.NewPage(items, req, total), nil
}

// GetItemByID retrieves a single item.
func (s *ItemService) GetItemByID(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, domain.NewNotFound("item", id)
	}
	return item, nil
}

// GetItemByName retrieves an item by its unique name.
func (s *ItemService) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	item, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get item by name: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("item %q: %w", name, domain.ErrNotFound)
	}
	return item, nil
}

// CreateItem adds a new item to the catalog.
func (s *ItemService) CreateItem(ctx context.Context, name string) (*domain.Item, error) {
	item := &domain.Item{Name: name}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.logger.InfoContext(ctx, "created item",
		slog.Int64("item_id", item.ID),
		slog.String("name", item.Name))

	return item, nil
}

// UpdateItem renames an existing item.
func (s *ItemService) UpdateItem(ctx context.Context, id int64, name string) (*domain.Item, error) {
	item, err := s.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = name
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.logger.InfoContext(ctx, "updated item", slog.Int64("item_id", id))

	return item, nil
}

// DeleteItem removes an item from the catalog.
func (s *ItemService) DeleteItem(ctx context.Context, id int64) error {
	if _, err := s.GetItemByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.logger.InfoContext(ctx, "deleted item", slog.Int64("item_id", id))

	return nil
}
