// internal/handlers/web.go
package handlers

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
)

// WebHandler serves the server-rendered pages
type WebHandler struct {
	db        ports.Database
	cache     ports.CacheRepository
	shops     ports.ShopService
	items     ports.ItemService
	visits    ports.VisitService
	purchases ports.PurchaseService
	lists     ports.ShoppingListService
	logger    *slog.Logger
	templates *template.Template
}

// NewWebHandler creates a new web handler
func NewWebHandler(
	database ports.Database,
	cache ports.CacheRepository,
	shops ports.ShopService,
	items ports.ItemService,
	visits ports.VisitService,
	purchases ports.PurchaseService,
	lists ports.ShoppingListService,
	logger *slog.Logger,
) *WebHandler {
	return &WebHandler{
		db:        database,
		cache:     cache,
		shops:     shops,
		items:     items,
		visits:    visits,
		purchases: purchases,
		lists:     lists,
		logger:    logger.With(slog.String("handler", "web")),
		templates: template.Must(template.New("web").Parse(webTemplates)),
	}
}

// Overview holds the counters shown on the index page
type Overview struct {
	Shops         int64     `json:"shops"`
	Items         int64     `json:"items"`
	Visits        int64     `json:"visits"`
	OpenVisits    int64     `json:"open_visits"`
	Purchases     int64     `json:"purchases"`
	ShoppingLists int64     `json:"shopping_lists"`
	Timestamp     time.Time `json:"timestamp"`
}

// Index handles GET /
func (h *WebHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var overview Overview
	err := h.cache.GetOrSet(ctx, "web:overview", &overview, func() (interface{}, error) {
		return h.loadOverview(ctx)
	}, time.Minute)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load overview",
			slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, "index", overview)
}

// Shops handles GET /shop
func (h *WebHandler) Shops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.shops.GetShops(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, "shops", shops)
}

// Items handles GET /item
func (h *WebHandler) Items(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.GetItems(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, "items", items)
}

// Visits handles GET /visit
func (h *WebHandler) Visits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.visits.GetVisits(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, "visits", visits)
}

// Purchases handles GET /purchase/{visitId}
func (h *WebHandler) Purchases(w http.ResponseWriter, r *http.Request) {
	visitID, ok := parsePathID(w, r, h.logger, "visitId")
	if !ok {
		return
	}

	purchases, err := h.purchases.GetPurchases(r.Context(), visitID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	h.render(w, "purchases", struct {
		VisitID   int64
		Purchases []domain.Purchase
	}{VisitID: visitID, Purchases: purchases})
}

// ShoppingLists handles GET /shopping_list
func (h *WebHandler) ShoppingLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.lists.GetShoppingLists(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	h.render(w, "shopping_lists", lists)
}

func (h *WebHandler) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("failed to render template",
			slog.String("template", name),
			slog.String("error", err.Error()))
	}
}

func (h *WebHandler) loadOverview(ctx context.Context) (*Overview, error) {
	overview := &Overview{Timestamp: time.Now()}

	query := `
		SELECT
			(SELECT COUNT(*) FROM shops),
			(SELECT COUNT(*) FROM items),
			(SELECT COUNT(*) FROM visits),
			(SELECT COUNT(*) FROM visits WHERE completed IS NULL),
			(SELECT COUNT(*) FROM purchases),
			(SELECT COUNT(*) FROM shopping_lists)`

	err := h.db.QueryRow(ctx, query).Scan(
		&overview.Shops,
		&overview.Items,
		&overview.Visits,
		&overview.OpenVisits,
		&overview.Purchases,
		&overview.ShoppingLists,
	)
	if err != nil {
		return nil, err
	}

	return overview, nil
}

const webTemplates = `
{{define "layout_head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Grocery Tracker</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
nav a { margin-right: 1rem; }
</style>
</head>
<body>
<nav>
<a href="/">Home</a>
<a href="/shop">Shops</a>
<a href="/item">Items</a>
<a href="/visit">Visits</a>
<a href="/shopping_list">Shopping Lists</a>
</nav>
{{end}}

{{define "index"}}{{template "layout_head"}}
<h1>Overview</h1>
<table>
<tr><th>Shops</th><td>{{.Shops}}</td></tr>
<tr><th>Items</th><td>{{.Items}}</td></tr>
<tr><th>Visits</th><td>{{.Visits}}</td></tr>
<tr><th>Open visits</th><td>{{.OpenVisits}}</td></tr>
<tr><th>Purchases</th><td>{{.Purchases}}</td></tr>
<tr><th>Shopping lists</th><td>{{.ShoppingLists}}</td></tr>
</table>
</body></html>{{end}}

{{define "shops"}}{{template "layout_head"}}
<h1>Shops</h1>
<table>
<tr><th>ID</th><th>Name</th></tr>
{{range .}}<tr><td>{{.ID}}</td><td>{{.Name}}</td></tr>{{end}}
</table>
</body></html>{{end}}

{{define "items"}}{{template "layout_head"}}
<h1>Items</h1>
<table>
<tr><th>ID</th><th>Name</th></tr>
{{range .}}<tr><td>{{.ID}}</td><td>{{.Name}}</td></tr>{{end}}
</table>
</body></html>{{end}}

{{define "visits"}}{{template "layout_head"}}
<h1>Visits</h1>
<table>
<tr><th>ID</th><th>Shop</th><th>Started</th><th>Completed</th><th></th></tr>
{{range .}}<tr>
<td>{{.ID}}</td>
<td>{{.ShopID}}</td>
<td>{{if .Started}}{{.Started.Format "2006-01-02 15:04"}}{{end}}</td>
<td>{{if .Completed}}{{.Completed.Format "2006-01-02 15:04"}}{{end}}</td>
<td><a href="/purchase/{{.ID}}">purchases</a></td>
</tr>{{end}}
</table>
</body></html>{{end}}

{{define "purchases"}}{{template "layout_head"}}
<h1>Purchases for visit {{.VisitID}}</h1>
<table>
<tr><th>Item</th><th>Quantity</th><th>Price</th><th>Total</th></tr>
{{range .Purchases}}<tr>
<td>{{.ItemID}}</td>
<td>{{.Quantity}}</td>
<td>{{if .Price}}{{.Price}}{{end}}</td>
<td>{{.Total}}</td>
</tr>{{end}}
</table>
</body></html>{{end}}

{{define "shopping_lists"}}{{template "layout_head"}}
<h1>Shopping Lists</h1>
<table>
<tr><th>ID</th><th>Name</th></tr>
{{range .}}<tr><td>{{.ID}}</td><td>{{.Name}}</td></tr>{{end}}
</table>
</body></html>{{end}}
`
