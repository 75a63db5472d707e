// internal/handlers/shopping_list_item.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/akarpov/grocery-be/internal/core/ports"
)

// ShoppingListItemHandler handles shopping list line HTTP requests
type ShoppingListItemHandler struct {
	service ports.ShoppingListItemService
	logger  *slog.Logger
}

// NewShoppingListItemHandler creates a new shopping list line handler
func NewShoppingListItemHandler(service ports.ShoppingListItemService, logger *slog.Logger) *ShoppingListItemHandler {
	return &ShoppingListItemHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "shopping_list_item")),
	}
}

// List handles GET /api/v1/shopping_list_item/{shoppingListId}
func (h *ShoppingListItemHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, ok := parsePathID(w, r, h.logger, "shoppingListId")
	if !ok {
		return
	}

	lines, err := h.service.GetListItems(ctx, listID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, lines)
}

// ListPage handles GET /api/v1/shopping_list_item/{shoppingListId}/list
func (h *ShoppingListItemHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, ok := parsePathID(w, r, h.logger, "shoppingListId")
	if !ok {
		return
	}

	page, err := h.service.GetListItemsPage(ctx, parsePageRequest(r), listID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, page)
}

// NotAddedItems handles GET /api/v1/shopping_list_item/{shoppingListId}/not_added
func (h *ShoppingListItemHandler) NotAddedItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, ok := parsePathID(w, r, h.logger, "shoppingListId")
	if !ok {
		return
	}

	items, err := h.service.GetNotAddedItems(ctx, listID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, items)
}

// Create handles POST /api/v1/shopping_list_item
func (h *ShoppingListItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	listID, ok := h.parseFormID(w, r, "shopping_list_id")
	if !ok {
		return
	}
	itemID, ok := h.parseFormID(w, r, "item_id")
	if !ok {
		return
	}
	quantity, ok := h.parseFormID(w, r, "quantity")
	if !ok {
		return
	}

	line, err := h.service.CreateListItem(ctx, listID, itemID, quantity)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "shopping list item created",
		slog.Int64("id", line.ID),
		slog.Int64("shopping_list_id", listID),
		slog.Int64("item_id", itemID))

	respondJSON(w, h.logger, http.StatusCreated, line)
}

// Update handles POST /api/v1/shopping_list_item/{id}
func (h *ShoppingListItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	quantity, ok := h.parseFormID(w, r, "quantity")
	if !ok {
		return
	}

	line, err := h.service.UpdateListItem(ctx, id, quantity)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, line)
}

// Delete handles DELETE /api/v1/shopping_list_item/{id}
func (h *ShoppingListItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteListItem(ctx, id); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "shopping list item deleted", slog.Int64("id", id))

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "shopping list item deleted",
		"id":      id,
	})
}

// parseFormID reads a required int64 form value
func (h *ShoppingListItemHandler) parseFormID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.FormValue(name)
	if raw == "" {
		respondError(w, h.logger, http.StatusBadRequest, name+" is required")
		return 0, false
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}

	return value, true
}
