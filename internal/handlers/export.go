// internal/handlers/export.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/akarpov/grocery-be/internal/core/ports"
)

// PurchaseExportRow is one line of a purchase export
type PurchaseExportRow struct {
	ItemID   int64  `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int64  `json:"quantity"`
	Price    string `json:"price,omitempty"`
	Total    string `json:"total"`
}

// JSONExportResponse wraps exported purchases with metadata
type JSONExportResponse struct {
	Purchases []PurchaseExportRow `json:"purchases"`
	Metadata  ExportMetadata      `json:"metadata"`
}

// ExportMetadata describes an export
type ExportMetadata struct {
	VisitID    int64     `json:"visit_id"`
	ExportDate time.Time `json:"export_date"`
	TotalRows  int       `json:"total_rows"`
	GrandTotal string    `json:"grand_total"`
}

// ExportHandler handles purchase export requests
type ExportHandler struct {
	purchases ports.PurchaseService
	items     ports.ItemService
	cache     ports.CacheRepository
	logger    *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(purchases ports.PurchaseService, items ports.ItemService, cache ports.CacheRepository, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		purchases: purchases,
		items:     items,
		cache:     cache,
		logger:    logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/purchase/{visitId}/export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visitID, ok := parsePathID(w, r, h.logger, "visitId")
	if !ok {
		return
	}

	rows, err := h.exportRows(ctx, visitID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	excelData, err := h.generateExcelFile(rows)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("purchases_visit_%d_%s.xlsx", visitID, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(excelData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(excelData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "Excel export completed",
		slog.Int64("visit_id", visitID),
		slog.Int("total_rows", len(rows)))
}

// ExportJSON handles GET /api/v1/purchase/{visitId}/export/json
func (h *ExportHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	visitID, ok := parsePathID(w, r, h.logger, "visitId")
	if !ok {
		return
	}

	cacheKey := fmt.Sprintf("export:purchases:%d:json", visitID)
	var cachedData []byte
	if err := h.cache.Get(ctx, cacheKey, &cachedData); err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.Header().Set("Content-Length", strconv.Itoa(len(cachedData)))

		if _, err := w.Write(cachedData); err != nil {
			h.logger.ErrorContext(ctx, "failed to write cached JSON response",
				slog.String("error", err.Error()))
		}
		return
	}

	rows, err := h.exportRows(ctx, visitID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	grandTotal := decimal.Zero
	for _, row := range rows {
		if total, err := decimal.NewFromString(row.Total); err == nil {
			grandTotal = grandTotal.Add(total)
		}
	}

	response := JSONExportResponse{
		Purchases: rows,
		Metadata: ExportMetadata{
			VisitID:    visitID,
			ExportDate: time.Now(),
			TotalRows:  len(rows),
			GrandTotal: grandTotal.String(),
		},
	}

	responseData, err := json.Marshal(response)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to marshal JSON response",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "failed to generate JSON")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseData)))

	if _, err := w.Write(responseData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write JSON response",
			slog.String("error", err.Error()))
		return
	}

	// Cache the result briefly, off the request path
	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := h.cache.SetWithTTL(cacheCtx, cacheKey, responseData, 5*time.Minute); err != nil {
			h.logger.WarnContext(cacheCtx, "failed to cache JSON export",
				slog.String("error", err.Error()))
		}
	}()

	h.logger.InfoContext(ctx, "JSON export completed",
		slog.Int64("visit_id", visitID),
		slog.Int("total_rows", len(rows)))
}

// exportRows loads a visit's purchases joined with item names
func (h *ExportHandler) exportRows(ctx context.Context, visitID int64) ([]PurchaseExportRow, error) {
	purchases, err := h.purchases.GetPurchases(ctx, visitID)
	if err != nil {
		return nil, err
	}

	items, err := h.items.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(items))
	for _, item := range items {
		names[item.ID] = item.Name
	}

	rows := make([]PurchaseExportRow, 0, len(purchases))
	for _, p := range purchases {
		row := PurchaseExportRow{
			ItemID:   p.ItemID,
			ItemName: names[p.ItemID],
			Quantity: p.Quantity,
			Total:    p.Total().String(),
		}
		if p.Price != nil {
			row.Price = p.Price.String()
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// generateExcelFile renders export rows as an xlsx workbook
func (h *ExportHandler) generateExcelFile(rows []PurchaseExportRow) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Purchases")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headers := []string{"Item ID", "Item Name", "Quantity", "Price", "Total"}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, row := range rows {
		dataRow := sheet.AddRow()
		dataRow.AddCell().Value = strconv.FormatInt(row.ItemID, 10)
		dataRow.AddCell().Value = row.ItemName
		dataRow.AddCell().Value = strconv.FormatInt(row.Quantity, 10)
		dataRow.AddCell().Value = row.Price
		dataRow.AddCell().Value = row.Total
	}

	for i := 0; i < len(headers); i++ {
		sheet.SetColWidth(i, i, 15)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}
