// internal/handlers/visit.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/akarpov/grocery-be/internal/core/ports"
)

// VisitHandler handles visit lifecycle HTTP requests
type VisitHandler struct {
	service ports.VisitService
	logger  *slog.Logger
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(service ports.VisitService, logger *slog.Logger) *VisitHandler {
	return &VisitHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "visit")),
	}
}

// List handles GET /api/v1/visit
func (h *VisitHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visits, err := h.service.GetVisits(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list visits",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, visits)
}

// ListPage handles GET /api/v1/visit/list
func (h *VisitHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.service.GetVisitsPage(ctx, parsePageRequest(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list visits page",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, page)
}

// Get handles GET /api/v1/visit/{id}
func (h *VisitHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	visit, err := h.service.GetVisitByID(ctx, id)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, visit)
}

// ListByShop handles GET /api/v1/visit/shop/{shopId}
func (h *VisitHandler) ListByShop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shopID, ok := parsePathID(w, r, h.logger, "shopId")
	if !ok {
		return
	}

	visits, err := h.service.GetVisitsByShop(ctx, shopID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, visits)
}

// Create handles POST /api/v1/visit/shop/{shopId}
func (h *VisitHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	shopID, ok := parsePathID(w, r, h.logger, "shopId")
	if !ok {
		return
	}

	visit, err := h.service.CreateVisit(ctx, shopID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "visit created",
		slog.Int64("id", visit.ID),
		slog.Int64("shop_id", shopID))

	respondJSON(w, h.logger, http.StatusCreated, visit)
}

// Start handles POST /api/v1/visit/{id}/start
func (h *VisitHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	visit, err := h.service.StartVisit(ctx, id)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, visit)
}

// Complete handles POST /api/v1/visit/{id}/complete
func (h *VisitHandler) Complete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	visit, err := h.service.CompleteVisit(ctx, id)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, visit)
}

// Delete handles DELETE /api/v1/visit/{id}
func (h *VisitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteVisit(ctx, id); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "visit deleted", slog.Int64("id", id))

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "visit deleted",
		"id":      id,
	})
}

// Summary handles GET /api/v1/visit/{id}/summary
func (h *VisitHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parsePathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	summary, err := h.service.GetVisitSummary(ctx, id)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, summary)
}
