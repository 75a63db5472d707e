// internal/core/domain/grocery.go
package domain

import (
	"fmt"
	"time"
)

// Shop represents a grocery shop visited by the user
type Shop struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Validate performs domain validation on the shop
func (s *Shop) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	return nil
}

// Item represents a purchasable grocery item
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Validate performs domain validation on the item
func (i *Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	return nil
}

// Visit represents a single shopping trip to a shop. Started and
// Completed are nil until the corresponding lifecycle action happens.
type Visit struct {
	ID             int64      `json:"id"`
	ShopID         int64      `json:"shop_id"`
	Started        *time.Time `json:"started,omitempty"`
	Completed      *time.Time `json:"completed,omitempty"`
	ShoppingListID *int64     `json:"shopping_list_id,omitempty"`
}

// Start stamps the visit as started at the given moment.
func (v *Visit) Start(now time.Time) {
	v.Started = &now
}

// Complete stamps the visit as completed. A visit completed without an
// explicit start gets its start backfilled to the completion moment.
func (v *Visit) Complete(now time.Time) {
	if v.Started == nil {
		v.Started = &now
	}
	v.Completed = &now
}

// ShoppingList represents a named list of items planned for purchase
type ShoppingList struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Validate performs domain validation on the shopping list
func (l *ShoppingList) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	return nil
}

// ShoppingListItem is a single line of a shopping list
type ShoppingListItem struct {
	ID             int64 `json:"id"`
	ShoppingListID int64 `json:"shopping_list_id"`
	ItemID         int64 `json:"item_id"`
	Quantity       int64 `json:"quantity"`
}

// Validate performs domain validation on the shopping list line
func (li *ShoppingListItem) Validate() error {
	if li.Quantity <= 0 {
		return fmt.Errorf("%w: Quantity must be > 0!", ErrInvalidArgument)
	}
	return nil
}
