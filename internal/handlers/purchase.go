// internal/handlers/purchase.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/akarpov/grocery-be/internal/core/ports"
)

// PurchaseHandler handles purchase accounting HTTP requests
type PurchaseHandler struct {
	service ports.PurchaseService
	logger  *slog.Logger
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(service ports.PurchaseService, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "purchase")),
	}
}

// Buy handles POST /api/v1/purchase/{visitId}/buy/{itemId}?quantity&price
func (h *PurchaseHandler) Buy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visitID, ok := parsePathID(w, r, h.logger, "visitId")
	if !ok {
		return
	}
	itemID, ok := parsePathID(w, r, h.logger, "itemId")
	if !ok {
		return
	}

	quantity, ok := h.parseQuantity(w, r)
	if !ok {
		return
	}
	price, ok := h.parsePrice(w, r)
	if !ok {
		return
	}

	purchase, err := h.service.BuyItem(ctx, visitID, itemID, quantity, price)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "item bought",
		slog.Int64("visit_id", visitID),
		slog.Int64("item_id", itemID),
		slog.Int64("quantity", quantity))

	respondJSON(w, h.logger, http.StatusOK, purchase)
}

// Return handles POST /api/v1/purchase/{visitId}/return/{itemId}?quantity.
// Returning the last held unit removes the record and responds with a
// JSON null body.
func (h *PurchaseHandler) Return(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visitID, ok := parsePathID(w, r, h.logger, "visitId")
	if !ok {
		return
	}
	itemID, ok := parsePathID(w, r, h.logger, "itemId")
	if !ok {
		return
	}

	quantity, ok := h.parseQuantity(w, r)
	if !ok {
		return
	}

	purchase, err := h.service.ReturnItem(ctx, visitID, itemID, quantity)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "item returned",
		slog.Int64("visit_id", visitID),
		slog.Int64("item_id", itemID),
		slog.Int64("quantity", quantity))

	respondJSON(w, h.logger, http.StatusOK, purchase)
}

// UpdatePrice handles POST /api/v1/purchase/{visitId}/price/{itemId}?price
func (h *PurchaseHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visitID, ok := parsePathID(w, r, h.logger, "visitId")
	if !ok {
		return
	}
	itemID, ok := parsePathID(w, r, h.logger, "itemId")
	if !ok {
		return
	}

	price, ok := h.parsePrice(w, r)
	if !ok {
		return
	}

	purchase, err := h.service.UpdatePrice(ctx, visitID, itemID, price)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, purchase)
}

// NotPurchasedItems handles GET /api/v1/purchase/{visitId}/not_purchased_items
func (h *PurchaseHandler) NotPurchasedItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visitID, ok := parsePathID(w, r, h.logger, "visitId")
	if !ok {
		return
	}

	items, err := h.service.GetNotPurchasedItems(ctx, visitID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, items)
}

// ListPage handles GET /api/v1/purchase/{visitId}/list
func (h *PurchaseHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visitID, ok := parsePathID(w, r, h.logger, "visitId")
	if !ok {
		return
	}

	page, err := h.service.GetPurchasesPage(ctx, parsePageRequest(r), visitID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, page)
}

// parseQuantity reads the required quantity query parameter
func (h *PurchaseHandler) parseQuantity(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("quantity")
	if raw == "" {
		respondError(w, h.logger, http.StatusBadRequest, "quantity is required")
		return 0, false
	}

	quantity, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid quantity")
		return 0, false
	}

	return quantity, true
}

// parsePrice reads the optional price query parameter
func (h *PurchaseHandler) parsePrice(w http.ResponseWriter, r *http.Request) (*decimal.Decimal, bool) {
	raw := r.URL.Query().Get("price")
	if raw == "" {
		return nil, true
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid price")
		return nil, false
	}

	return &price, true
}
