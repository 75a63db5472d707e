// internal/core/services/shopping_list.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
)

// ShoppingListService handles shopping list business logic
type ShoppingListService struct {
	repo   ports.ShoppingListRepository
	logger *slog.Logger
}

var _ ports.ShoppingListService = (*ShoppingListService)(nil)

// NewShoppingListService creates a new shopping list service
func NewShoppingListService(repo ports.ShoppingListRepository, logger *slog.Logger) *ShoppingListService {
	return &ShoppingListService{
		repo:   repo,
		logger: logger.With(slog.String("service", "shopping_list")),
	}
}

// GetShoppingLists retrieves every shopping list.
func (s *ShoppingListService) GetShoppingLists(ctx context.Context) ([]domain.ShoppingList, error) {
	lists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}
	return lists, nil
}

// GetShoppingListsPage retrieves one page of shopping lists.
func (s *ShoppingListService) GetShoppingListsPage(ctx context.Context, req ports.PageRequest) (*ports.Page[domain.ShoppingList], error) {
	req = req.Normalize()

	lists, total, err := s.repo.FindPage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists page: %w", err)
	}
	return ports.NewPage(lists, req, total), nil
}

// GetShoppingListByID retrieves a single shopping list.
func (s *ShoppingListService) GetShoppingListByID(ctx context.Context, id int64) (*domain.ShoppingList, error) {
	list, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}
	if list == nil {
		return nil, domain.NewNotFound("shopping list", id)
	}
	return list, nil
}

// GetShoppingListByName retrieves a shopping list by its unique name.
func (s *ShoppingListService) GetShoppingListByName(ctx context.Context, name string) (*domain.ShoppingList, error) {
	list, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list by name: %w", err)
	}
	if list == nil {
		return nil, fmt.Errorf("shopping list %q: %w", name, domain.ErrNotFound)
	}
	return list, nil
}

// CreateShoppingList creates a new shopping list.
func (s *ShoppingListService) CreateShoppingList(ctx context.Context, name string) (*domain.ShoppingList, error) {
	list := &domain.ShoppingList{Name: name}
	if err := list.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to save shopping list: %w", err)
	}

	s.logger.InfoContext(ctx, "created shopping list",
		slog.Int64("shopping_list_id", list.ID),
		slog.String("name", list.Name))

	return list, nil
}

// UpdateShoppingList renames an existing shopping list.
func (s *ShoppingListService) UpdateShoppingList(ctx context.Context, id int64, name string) (*domain.ShoppingList, error) {
	list, err := s.GetShoppingListByID(ctx, id)
	if err != nil {
		return nil, err
	}

	list.Name = name
	if err := list.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to update shopping list: %w", err)
	}

	s.logger.InfoContext(ctx, "updated shopping list", slog.Int64("shopping_list_id", id))

	return list, nil
}

// DeleteShoppingList removes a shopping list and its lines.
func (s *ShoppingListService) DeleteShoppingList(ctx context.Context, id int64) error {
	if _, err := s.GetShoppingListByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}

	s.logger.InfoContext(ctx, "deleted shopping list", slog.Int64("shopping_list_id", id))

	return nil
}
