//go:build e2e
// +build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/suite"

	"github.com/akarpov/grocery-be/internal/adapters/db"
	redis_a "github.com/akarpov/grocery-be/internal/adapters/redis_adapter"
	"github.com/akarpov/grocery-be/internal/core/services"
	"github.com/akarpov/grocery-be/internal/handlers"
	"github.com/akarpov/grocery-be/test/helpers"
)

// noopEnqueuer satisfies ports.TaskEnqueuer without a running worker.
type noopEnqueuer struct{}

func (noopEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	return &asynq.TaskInfo{}, nil
}

type ShoppingE2ESuite struct {
	suite.Suite
	server    *httptest.Server
	client    *http.Client
	baseURL   string
	testDB    *helpers.TestDB
	testRedis *helpers.TestRedis
}

func (s *ShoppingE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	s.server = s.startTestServer()
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/v1"
}

func (s *ShoppingE2ESuite) TearDownSuite() {
	s.server.Close()
}

func (s *ShoppingE2ESuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
	s.testRedis.Server.FlushAll()
}

func (s *ShoppingE2ESuite) TestCompleteShoppingWorkflow() {
	// 1. Create a shop and an item
	shop := s.postForm("/shop", url.Values{"name": {"Corner Grocery"}})
	s.Require().Equal(http.StatusCreated, shop.StatusCode)
	shopID := s.decodeID(shop)

	item := s.postForm("/item", url.Values{"name": {"Milk"}})
	s.Require().Equal(http.StatusCreated, item.StatusCode)
	itemID := s.decodeID(item)

	// 2. Open a visit at the shop and start it
	visit := s.post(fmt.Sprintf("/visit/shop/%d", shopID))
	s.Require().Equal(http.StatusCreated, visit.StatusCode)
	visitID := s.decodeID(visit)

	resp := s.post(fmt.Sprintf("/visit/%d/start", visitID))
	s.Equal(http.StatusOK, resp.StatusCode)

	// 3. Buy two units at 2.50
	resp = s.post(fmt.Sprintf("/purchase/%d/buy/%d?quantity=2&price=2.50", visitID, itemID))
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var purchase map[string]interface{}
	s.decodeResponse(resp, &purchase)
	s.EqualValues(2, purchase["quantity"])

	// 4. Return one unit
	resp = s.post(fmt.Sprintf("/purchase/%d/return/%d?quantity=1", visitID, itemID))
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.decodeResponse(resp, &purchase)
	s.EqualValues(1, purchase["quantity"])

	// 5. Returning the last unit removes the record entirely
	resp = s.post(fmt.Sprintf("/purchase/%d/return/%d?quantity=1", visitID, itemID))
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	s.NoError(err)
	s.Equal("null", strings.TrimSpace(string(body)))

	// 6. Buy again and complete the visit
	resp = s.post(fmt.Sprintf("/purchase/%d/buy/%d?quantity=3&price=2.00", visitID, itemID))
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	resp = s.post(fmt.Sprintf("/visit/%d/complete", visitID))
	s.Equal(http.StatusOK, resp.StatusCode)

	// 7. Summary reflects the purchases
	resp = s.get(fmt.Sprintf("/visit/%d/summary", visitID))
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var summary map[string]interface{}
	s.decodeResponse(resp, &summary)
	s.EqualValues(1, summary["purchases"])
	s.EqualValues(3, summary["units"])

	// 8. JSON export includes the grand total
	resp = s.get(fmt.Sprintf("/purchase/%d/export/json", visitID))
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Equal("MISS", resp.Header.Get("X-Cache"))

	var export map[string]interface{}
	s.decodeResponse(resp, &export)
	metadata := export["metadata"].(map[string]interface{})
	s.Equal("6", metadata["grand_total"])

	// 9. Excel export responds with a spreadsheet
	resp = s.get(fmt.Sprintf("/purchase/%d/export/excel", visitID))
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	resp.Body.Close()

	// 10. Delete the visit; its purchases go with it
	req, err := http.NewRequest(http.MethodDelete, s.baseURL+fmt.Sprintf("/visit/%d", visitID), nil)
	s.NoError(err)
	resp, err = s.client.Do(req)
	s.NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.get(fmt.Sprintf("/visit/%d", visitID))
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *ShoppingE2ESuite) TestShoppingListWorkflow() {
	list := s.postForm("/shopping_list", url.Values{"name": {"Weekly Groceries"}})
	s.Require().Equal(http.StatusCreated, list.StatusCode)
	listID := s.decodeID(list)

	item := s.postForm("/item", url.Values{"name": {"Bread"}})
	s.Require().Equal(http.StatusCreated, item.StatusCode)
	itemID := s.decodeID(item)

	other := s.postForm("/item", url.Values{"name": {"Eggs"}})
	s.Require().Equal(http.StatusCreated, other.StatusCode)

	resp := s.postForm("/shopping_list_item", url.Values{
		"shopping_list_id": {fmt.Sprintf("%d", listID)},
		"item_id":          {fmt.Sprintf("%d", itemID)},
		"quantity":         {"2"},
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	resp = s.get(fmt.Sprintf("/shopping_list_item/%d", listID))
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var lines []map[string]interface{}
	s.decodeResponse(resp, &lines)
	s.Len(lines, 1)

	// Eggs was never added to the list
	resp = s.get(fmt.Sprintf("/shopping_list_item/%d/not_added", listID))
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var notAdded []map[string]interface{}
	s.decodeResponse(resp, &notAdded)
	s.Len(notAdded, 1)
	s.Equal("Eggs", notAdded[0]["name"])
}

func (s *ShoppingE2ESuite) TestValidationErrors() {
	resp := s.postForm("/shop", url.Values{})
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = s.post("/purchase/1/buy/1?quantity=0&price=1.00")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = s.get("/visit/999999")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *ShoppingE2ESuite) TestHealthCheck() {
	resp, err := s.client.Get(s.server.URL + "/health")
	s.NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)

	var health map[string]interface{}
	s.decodeResponse(resp, &health)
	s.Equal("healthy", health["status"])

	svcs := health["services"].(map[string]interface{})
	s.Contains(svcs, "database")
	s.Contains(svcs, "redis")
}

// Helper methods

func (s *ShoppingE2ESuite) startTestServer() *httptest.Server {
	logger := helpers.TestLogger()
	cfg := helpers.LoadTestConfig()
	cache := redis_a.NewCache(s.testRedis.Client, time.Hour, logger)

	shopRepo := db.NewShopRepository(s.testDB.Database, logger)
	itemRepo := db.NewItemRepository(s.testDB.Database, logger)
	visitRepo := db.NewVisitRepository(s.testDB.Database, logger)
	purchaseRepo := db.NewPurchaseRepository(s.testDB.Database, logger)
	listRepo := db.NewShoppingListRepository(s.testDB.Database, logger)
	lineRepo := db.NewShoppingListItemRepository(s.testDB.Database, logger)

	shopService := services.NewShopService(shopRepo, logger)
	itemService := services.NewItemService(itemRepo, logger)
	listService := services.NewShoppingListService(listRepo, logger)
	visitService := services.NewVisitService(visitRepo, shopRepo, purchaseRepo, cache, noopEnqueuer{}, logger)
	purchaseService := services.NewPurchaseService(purchaseRepo, visitRepo, itemRepo, logger)
	lineService := services.NewShoppingListItemService(lineRepo, listRepo, itemRepo, logger)

	shopHandler := handlers.NewShopHandler(shopService, logger)
	itemHandler := handlers.NewItemHandler(itemService, logger)
	visitHandler := handlers.NewVisitHandler(visitService, logger)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, logger)
	listHandler := handlers.NewShoppingListHandler(listService, logger)
	lineHandler := handlers.NewShoppingListItemHandler(lineService, logger)
	exportHandler := handlers.NewExportHandler(purchaseService, itemService, cache, logger)
	healthHandler := handlers.NewHealthHandler(s.testDB.Database, s.testRedis.Client, nil, cfg, logger)

	apiV1 := "/api/v1"
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Readiness)

	mux.HandleFunc("GET "+apiV1+"/shop", shopHandler.List)
	mux.HandleFunc("POST "+apiV1+"/shop", shopHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/shop/{id}", shopHandler.Get)

	mux.HandleFunc("POST "+apiV1+"/item", itemHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/item", itemHandler.List)

	mux.HandleFunc("POST "+apiV1+"/shopping_list", listHandler.Create)
	mux.HandleFunc("POST "+apiV1+"/shopping_list_item", lineHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/shopping_list_item/{shoppingListId}", lineHandler.List)
	mux.HandleFunc("GET "+apiV1+"/shopping_list_item/{shoppingListId}/not_added", lineHandler.NotAddedItems)

	mux.HandleFunc("POST "+apiV1+"/visit/shop/{shopId}", visitHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/visit/{id}", visitHandler.Get)
	mux.HandleFunc("POST "+apiV1+"/visit/{id}/start", visitHandler.Start)
	mux.HandleFunc("POST "+apiV1+"/visit/{id}/complete", visitHandler.Complete)
	mux.HandleFunc("DELETE "+apiV1+"/visit/{id}", visitHandler.Delete)
	mux.HandleFunc("GET "+apiV1+"/visit/{id}/summary", visitHandler.Summary)

	mux.HandleFunc("POST "+apiV1+"/purchase/{visitId}/buy/{itemId}", purchaseHandler.Buy)
	mux.HandleFunc("POST "+apiV1+"/purchase/{visitId}/return/{itemId}", purchaseHandler.Return)
	mux.HandleFunc("POST "+apiV1+"/purchase/{visitId}/price/{itemId}", purchaseHandler.UpdatePrice)
	mux.HandleFunc("GET "+apiV1+"/purchase/{visitId}/export/excel", exportHandler.ExportExcel)
	mux.HandleFunc("GET "+apiV1+"/purchase/{visitId}/export/json", exportHandler.ExportJSON)

	return httptest.NewServer(mux)
}

func (s *ShoppingE2ESuite) get(path string) *http.Response {
	resp, err := s.client.Get(s.baseURL + path)
	s.Require().NoError(err)
	return resp
}

func (s *ShoppingE2ESuite) post(path string) *http.Response {
	resp, err := s.client.Post(s.baseURL+path, "", nil)
	s.Require().NoError(err)
	return resp
}

func (s *ShoppingE2ESuite) postForm(path string, values url.Values) *http.Response {
	resp, err := s.client.PostForm(s.baseURL+path, values)
	s.Require().NoError(err)
	return resp
}

func (s *ShoppingE2ESuite) decodeID(resp *http.Response) int64 {
	var payload map[string]interface{}
	s.decodeResponse(resp, &payload)
	id, ok := payload["id"].(float64)
	s.Require().True(ok, "response has no numeric id: %v", payload)
	return int64(id)
}

func (s *ShoppingE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.Require().NoError(err)
}

func TestShoppingE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(ShoppingE2ESuite))
}
