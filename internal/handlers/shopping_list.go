// internal/handlers/shopping_list.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/akarpov/grocery-be/internal/core/ports"
)

// ShoppingListHandler handles shopping list HTTP requests
type ShoppingListHandler struct {
	service ports.ShoppingListService
	logger  *slog.Logger
}

// NewShoppingListHandler creates a new shopping list handler
func NewShoppingListHandler(service ports.ShoppingListService, logger *slog.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "shopping_list")),
	}
}

// List handles GET /api/v1/shopping_list
func (h *ShoppingListHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lists, err := h.service.GetShoppingLists(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list shopping lists",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, lists)
}

// ListPage handles GET /api/v1/shopping_list/list
func (h *ShoppingListHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.service.GetShoppingListsPage(ctx, parsePageRequest(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list shopping lists page",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, page)
}

// Get handles GET /api/v1/shopping_list/{id}
func (h *ShoppingListHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	list, err := h.service.GetShoppingListByID(ctx, id)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, list)
}

// Search handles GET /api/v1/shopping_list/search?name=
func (h *ShoppingListHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := r.URL.Query().Get("name")
	if name == "" {
		respondError(w, h.logger, http.StatusBadRequest, "name is required")
		return
	}

	list, err := h.service.GetShoppingListByName(ctx, name)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, list)
}

// Create handles POST /api/v1/shopping_list
func (h *ShoppingListHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.service.CreateShoppingList(ctx, r.FormValue("name"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "shopping list created",
		slog.Int64("id", list.ID),
		slog.String("name", list.Name))

	respondJSON(w, h.logger, http.StatusCreated, list)
}

// Update handles POST /api/v1/shopping_list/{id}
func (h *ShoppingListHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	list, err := h.service.UpdateShoppingList(ctx, id, r.FormValue("name"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, list)
}

// Delete handles DELETE /api/v1/shopping_list/{id}
func (h *ShoppingListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteShoppingList(ctx, id); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "shopping list deleted", slog.Int64("id", id))

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "shopping list deleted",
		"id":      id,
	})
}
