// internal/handlers/item.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/akarpov/grocery-be/internal/core/ports"
)

// ItemHandler handles item catalog HTTP requests
type ItemHandler struct {
	service ports.ItemService
	logger  *slog.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(service ports.ItemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "item")),
	}
}

// List handles GET /api/v1/item
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.service.GetItems(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list items",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, items)
}

// ListPage handles GET /api/v1/item/list
func (h *ItemHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.service.GetItemsPage(ctx, parsePageRequest(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list items page",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, page)
}

// Get handles GET /api/v1/item/{id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	item, err := h.service.GetItemByID(ctx, id)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// Search handles GET /api/v1/item/search?name=
func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := r.URL.Query().Get("name")
	if name == "" {
		respondError(w, h.logger, http.StatusBadRequest, "name is required")
		return
	}

	item, err := h.service.GetItemByName(ctx, name)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// Create handles POST /api/v1/item
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	item, err := h.service.CreateItem(ctx, r.FormValue("name"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "item created",
		slog.Int64("id", item.ID),
		slog.String("name", item.Name))

	respondJSON(w, h.logger, http.StatusCreated, item)
}

// Update handles POST /api/v1/item/{id}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	item, err := h.service.UpdateItem(ctx, id, r.FormValue("name"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// Delete handles DELETE /api/v1/item/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteItem(ctx, id); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "item deleted", slog.Int64("id", id))

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "item deleted",
		"id":      id,
	})
}
