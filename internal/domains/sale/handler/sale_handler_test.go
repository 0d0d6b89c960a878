package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"maventoys-backend/internal/domains/sale"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSaleService struct {
	sale.SaleService
	createSale  func(ctx context.Context, req *sale.CreateSaleReq) (*sale.SaleResp, error)
	byDateRange func(ctx context.Context, start, end time.Time) ([]*sale.SaleResp, error)
}

func (s *stubSaleService) CreateSale(ctx context.Context, req *sale.CreateSaleReq) (*sale.SaleResp, error) {
	return s.createSale(ctx, req)
}

func (s *stubSaleService) GetSalesByDateRange(ctx context.Context, start, end time.Time) ([]*sale.SaleResp, error) {
	return s.byDateRange(ctx, start, end)
}

func newTestRouter(svc sale.SaleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSaleHandler(svc)

	router := gin.New()
	sales := router.Group("/api/v1/sales")
	{
		sales.POST("", h.Create)
		sales.GET("/byDateRange", h.ByDateRange)
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, url, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestCreateSaleReturns201(t *testing.T) {
	svc := &stubSaleService{
		createSale: func(_ context.Context, req *sale.CreateSaleReq) (*sale.SaleResp, error) {
			return &sale.SaleResp{
				ID:         1,
				StoreID:    req.StoreID,
				EmployeeID: req.EmployeeID,
				Total:      23.0,
				Date:       time.Now(),
				Products: []sale.InvoiceResp{
					{ID: 1, ProductID: 10, Quantity: 2, Subtotal: 20.0},
					{ID: 2, ProductID: 11, Quantity: 1, Discount: 25, Subtotal: 4.0},
				},
			}, nil
		},
	}
	router := newTestRouter(svc)

	w, body := doRequest(t, router, http.MethodPost, "/api/v1/sales",
		`{"storeId":1,"employeeId":1,"products":[{"productId":10,"quantity":2},{"productId":11,"quantity":1,"discount":25}]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Sale created successfully", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, 23.0, data["total"])
	assert.Len(t, data["products"], 2)
}

func TestCreateSaleRejectsEmptyProducts(t *testing.T) {
	router := newTestRouter(&stubSaleService{})

	w, _ := doRequest(t, router, http.MethodPost, "/api/v1/sales",
		`{"storeId":1,"employeeId":1,"products":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSaleRejectsZeroQuantity(t *testing.T) {
	router := newTestRouter(&stubSaleService{})

	w, _ := doRequest(t, router, http.MethodPost, "/api/v1/sales",
		`{"storeId":1,"employeeId":1,"products":[{"productId":10,"quantity":0}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestByDateRangeParsesDates(t *testing.T) {
	var gotStart, gotEnd time.Time
	svc := &stubSaleService{
		byDateRange: func(_ context.Context, start, end time.Time) ([]*sale.SaleResp, error) {
			gotStart, gotEnd = start, end
			return []*sale.SaleResp{}, nil
		},
	}
	router := newTestRouter(svc)

	w, body := doRequest(t, router, http.MethodGet,
		"/api/v1/sales/byDateRange?startDate=2024-01-01&endDate=2024-01-31", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sale fetched successfully", body["message"])
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), gotStart)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), gotEnd)
}

func TestByDateRangeRejectsBadDate(t *testing.T) {
	router := newTestRouter(&stubSaleService{})

	w, _ := doRequest(t, router, http.MethodGet,
		"/api/v1/sales/byDateRange?startDate=01-01-2024&endDate=2024-01-31", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
