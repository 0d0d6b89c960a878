package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"maventoys-backend/internal/domains/store"
	"maventoys-backend/internal/shared/apperror"
	"maventoys-backend/internal/shared/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStoreService implements the methods a test overrides; calling an
// unstubbed method panics, which is what we want in a handler test.
type stubStoreService struct {
	store.StoreService
	getStores   func(ctx context.Context) ([]*store.StoreResp, error)
	getByID     func(ctx context.Context, id int) (*store.StoreResp, error)
	createStore func(ctx context.Context, req *store.CreateStoreReq) (*store.StoreResp, error)
	getPaged    func(ctx context.Context, f store.PagedFilters, p pagination.Params) (pagination.Page[*store.StoreResp], error)
	getTotal    func(ctx context.Context, id int) (float64, error)
}

func (s *stubStoreService) GetStores(ctx context.Context) ([]*store.StoreResp, error) {
	return s.getStores(ctx)
}

func (s *stubStoreService) GetStoreByID(ctx context.Context, id int) (*store.StoreResp, error) {
	return s.getByID(ctx, id)
}

func (s *stubStoreService) CreateStore(ctx context.Context, req *store.CreateStoreReq) (*store.StoreResp, error) {
	return s.createStore(ctx, req)
}

func (s *stubStoreService) GetStoresPaged(ctx context.Context, f store.PagedFilters, p pagination.Params) (pagination.Page[*store.StoreResp], error) {
	return s.getPaged(ctx, f, p)
}

func (s *stubStoreService) GetTotalSalesByStore(ctx context.Context, id int) (float64, error) {
	return s.getTotal(ctx, id)
}

func newTestRouter(svc store.StoreService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStoreHandler(svc)

	router := gin.New()
	stores := router.Group("/api/v1/stores")
	{
		stores.GET("", h.List)
		stores.POST("", h.Create)
		stores.GET("/paged", h.Paged)
		stores.GET("/:id", h.GetByID)
		stores.GET("/:id/totalSales", h.TotalSales)
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

func TestGetByIDSuccessEnvelope(t *testing.T) {
	svc := &stubStoreService{
		getByID: func(_ context.Context, id int) (*store.StoreResp, error) {
			return &store.StoreResp{ID: id, Name: "Maven Toys Downtown", Active: true}, nil
		},
	}
	router := newTestRouter(svc)

	w, body := doRequest(t, router, http.MethodGet, "/api/v1/stores/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Store details fetched successfully", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["id"])
	assert.Equal(t, "Maven Toys Downtown", data["name"])
}

func TestGetByIDNotFoundMapsTo404(t *testing.T) {
	svc := &stubStoreService{
		getByID: func(_ context.Context, id int) (*store.StoreResp, error) {
			return nil, apperror.NotFound("Store not found with ID: %d", id)
		},
	}
	router := newTestRouter(svc)

	w, body := doRequest(t, router, http.MethodGet, "/api/v1/stores/42", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Store not found with ID: 42", body["message"])
	assert.NotContains(t, body, "data")
}

func TestGetByIDRejectsNonNumericID(t *testing.T) {
	router := newTestRouter(&stubStoreService{})

	w, _ := doRequest(t, router, http.MethodGet, "/api/v1/stores/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListEmptyBodyIsSuccess(t *testing.T) {
	svc := &stubStoreService{
		getStores: func(_ context.Context) ([]*store.StoreResp, error) {
			return []*store.StoreResp{}, nil
		},
	}
	router := newTestRouter(svc)

	w, body := doRequest(t, router, http.MethodGet, "/api/v1/stores", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Active store details fetched successfully", body["message"])
}

func TestCreateStoreReturns201(t *testing.T) {
	svc := &stubStoreService{
		createStore: func(_ context.Context, req *store.CreateStoreReq) (*store.StoreResp, error) {
			return &store.StoreResp{ID: 9, Name: req.Name, City: req.City, Location: req.Location, Active: true}, nil
		},
	}
	router := newTestRouter(svc)

	w, body := doRequest(t, router, http.MethodPost, "/api/v1/stores",
		`{"name":"Maven Toys Airport","city":"Monterrey","location":"Airport"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Store created successfully", body["message"])
}

func TestCreateStoreValidatesBody(t *testing.T) {
	// Missing name never reaches the service.
	router := newTestRouter(&stubStoreService{})

	w, _ := doRequest(t, router, http.MethodPost, "/api/v1/stores", `{"city":"Monterrey"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPagedEnvelopeShape(t *testing.T) {
	svc := &stubStoreService{
		getPaged: func(_ context.Context, f store.PagedFilters, p pagination.Params) (pagination.Page[*store.StoreResp], error) {
			return pagination.NewPage([]*store.StoreResp{}, p, 3), nil
		},
	}
	router := newTestRouter(svc)

	w, body := doRequest(t, router, http.MethodGet, "/api/v1/stores/paged?page=5&size=10", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Filtered stores retrieved successfully", body["message"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{}, data["content"])
	assert.Equal(t, float64(3), data["totalElements"])
	assert.Equal(t, float64(5), data["page"])
	assert.Equal(t, float64(1), data["totalPages"])
}

func TestTotalSalesDataIsNumber(t *testing.T) {
	svc := &stubStoreService{
		getTotal: func(_ context.Context, _ int) (float64, error) {
			return 0.0, nil
		},
	}
	router := newTestRouter(svc)

	w, body := doRequest(t, router, http.MethodGet, "/api/v1/stores/1/totalSales", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Total sales calculated successfully", body["message"])
	assert.Equal(t, float64(0), body["data"])
}
