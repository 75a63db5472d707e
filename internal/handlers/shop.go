// internal/handlers/shop.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/akarpov/grocery-be/internal/core/ports"
)

// ShopHandler handles shop-related HTTP requests
type ShopHandler struct {
	service ports.ShopService
	logger  *slog.Logger
}

// NewShopHandler creates a new shop handler
func NewShopHandler(service ports.ShopService, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "shop")),
	}
}

// List handles GET /api/v1/shop
func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shops, err := h.service.GetShops(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list shops",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, shops)
}

// ListPage handles GET /api/v1/shop/list
func (h *ShopHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.service.GetShopsPage(ctx, parsePageRequest(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list shops page",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, page)
}

// Get handles GET /api/v1/shop/{id}
func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	shop, err := h.service.GetShopByID(ctx, id)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, shop)
}

// Search handles GET /api/v1/shop/search?name=
func (h *ShopHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := r.URL.Query().Get("name")
	if name == "" {
		respondError(w, h.logger, http.StatusBadRequest, "name is required")
		return
	}

	shop, err := h.service.GetShopByName(ctx, name)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, shop)
}

// Create handles POST /api/v1/shop
func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shop, err := h.service.CreateShop(ctx, r.FormValue("name"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "shop created",
		slog.Int64("id", shop.ID),
		slog.String("name", shop.Name))

	respondJSON(w, h.logger, http.StatusCreated, shop)
}

// Update handles POST /api/v1/shop/{id}
func (h *ShopHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	shop, err := h.service.UpdateShop(ctx, id, r.FormValue("name"))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, shop)
}

// Delete handles DELETE /api/v1/shop/{id}
func (h *ShopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteShop(ctx, id); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "shop deleted", slog.Int64("id", id))

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "shop deleted",
		"id":      id,
	})
}
