// internal/handlers/shop_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akarpov/grocery-be/internal/core/domain"
	"github.com/akarpov/grocery-be/internal/core/ports"
	"github.com/akarpov/grocery-be/internal/handlers"
	"github.com/akarpov/grocery-be/test/helpers"
	"github.com/akarpov/grocery-be/test/mocks"
)

func newShopHandler(t *testing.T) (*handlers.ShopHandler, *mocks.MockShopService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockShopService(ctrl)
	return handlers.NewShopHandler(mockService, helpers.TestLogger()), mockService
}

func TestShopHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setupMocks     func(*mocks.MockShopService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "successfully_retrieves_shop",
			id:   "3",
			setupMocks: func(m *mocks.MockShopService) {
				m.EXPECT().
					GetShopByID(gomock.Any(), int64(3)).
					Return(&domain.Shop{ID: 3, Name: "Corner Grocery"}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.Shop
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, int64(3), response.ID)
				assert.Equal(t, "Corner Grocery", response.Name)
			},
		},
		{
			name:           "invalid_id_format",
			id:             "abc",
			setupMocks:     func(m *mocks.MockShopService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "invalid id", response["error"])
			},
		},
		{
			name: "shop_not_found",
			id:   "99",
			setupMocks: func(m *mocks.MockShopService) {
				m.EXPECT().
					GetShopByID(gomock.Any(), int64(99)).
					Return(nil, domain.NewNotFound("shop", 99))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "service_error",
			id:   "3",
			setupMocks: func(m *mocks.MockShopService) {
				m.EXPECT().
					GetShopByID(gomock.Any(), int64(3)).
					Return(nil, errors.New("database connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newShopHandler(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/shop/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()

			handler.Get(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestShopHandler_Create(t *testing.T) {
	t.Run("creates_shop_from_form", func(t *testing.T) {
		handler, mockService := newShopHandler(t)

		mockService.EXPECT().
			CreateShop(gomock.Any(), "Corner Grocery").
			Return(&domain.Shop{ID: 3, Name: "Corner Grocery"}, nil)

		form := url.Values{"name": {"Corner Grocery"}}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shop",
			strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response domain.Shop
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(3), response.ID)
	})

	t.Run("empty_name_rejected", func(t *testing.T) {
		handler, mockService := newShopHandler(t)

		mockService.EXPECT().
			CreateShop(gomock.Any(), "").
			Return(nil, domain.NewInvalidArgument("name is required"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/shop", nil)
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestShopHandler_Search(t *testing.T) {
	t.Run("finds_shop_by_name", func(t *testing.T) {
		handler, mockService := newShopHandler(t)

		mockService.EXPECT().
			GetShopByName(gomock.Any(), "Corner Grocery").
			Return(&domain.Shop{ID: 3, Name: "Corner Grocery"}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/shop/search?name="+url.QueryEscape("Corner Grocery"), nil)
		w := httptest.NewRecorder()

		handler.Search(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing_name_parameter", func(t *testing.T) {
		handler, _ := newShopHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/shop/search", nil)
		w := httptest.NewRecorder()

		handler.Search(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestShopHandler_ListPage(t *testing.T) {
	handler, mockService := newShopHandler(t)

	mockService.EXPECT().
		GetShopsPage(gomock.Any(), ports.PageRequest{Page: 2, Size: 5}).
		Return(&ports.Page[domain.Shop]{
			Items:      []domain.Shop{{ID: 6, Name: "Budget Basket"}},
			Page:       2,
			Size:       5,
			TotalCount: 6,
			TotalPages: 2,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shop/list?page=2&size=5", nil)
	w := httptest.NewRecorder()

	handler.ListPage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response ports.Page[domain.Shop]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Page)
	assert.Equal(t, int64(6), response.TotalCount)
	require.Len(t, response.Items, 1)
}

func TestShopHandler_Delete(t *testing.T) {
	t.Run("deletes_shop", func(t *testing.T) {
		handler, mockService := newShopHandler(t)

		mockService.EXPECT().
			DeleteShop(gomock.Any(), int64(3)).
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/shop/3", nil)
		req.SetPathValue("id", "3")
		w := httptest.NewRecorder()

		handler.Delete(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("shop_not_found", func(t *testing.T) {
		handler, mockService := newShopHandler(t)

		mockService.EXPECT().
			DeleteShop(gomock.Any(), int64(99)).
			Return(domain.NewNotFound("shop", 99))

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/shop/99", nil)
		req.SetPathValue("id", "99")
		w := httptest.NewRecorder()

		handler.Delete(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
