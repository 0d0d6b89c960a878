package handler

import (
	"net/http"

	"maventoys-backend/internal/domains/store"
	"maventoys-backend/internal/shared/pagination"
	"maventoys-backend/internal/shared/request"
	"maventoys-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type StoreHandler struct {
	service store.StoreService
}

func NewStoreHandler(svc store.StoreService) *StoreHandler {
	return &StoreHandler{service: svc}
}

// ========== GET /v1/stores ==========
func (h *StoreHandler) List(c *gin.Context) {
	resp, err := h.service.GetStores(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Active store details fetched successfully", resp)
}

// ========== GET /v1/stores/:id ==========
func (h *StoreHandler) GetByID(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetStoreByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Store details fetched successfully", resp)
}

// ========== POST /v1/stores ==========
func (h *StoreHandler) Create(c *gin.Context) {
	var req store.CreateStoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateStore(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, "Store created successfully", resp)
}

// ========== PATCH /v1/stores/:id and PUT /v1/stores/:id ==========
// Both verbs apply the same partial-update semantics: absent fields keep
// their stored values.
func (h *StoreHandler) Update(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req store.UpdateStoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateStore(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Store updated successfully", resp)
}

// ========== GET /v1/stores/:id/employees ==========
func (h *StoreHandler) Employees(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetEmployeesByStore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Employees found successfully", resp)
}

// ========== GET /v1/stores/:id/sales ==========
func (h *StoreHandler) Sales(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetSalesByStore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Sale found successfully", resp)
}

// ========== GET /v1/stores/:id/totalSales ==========
func (h *StoreHandler) TotalSales(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	total, err := h.service.GetTotalSalesByStore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Total sales calculated successfully", total)
}

// ========== GET /v1/stores/paged ==========
func (h *StoreHandler) Paged(c *gin.Context) {
	id, err := request.QueryInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filters := store.PagedFilters{
		ID:       id,
		Name:     request.QueryString(c, "name"),
		Location: request.QueryString(c, "location"),
	}

	resp, err := h.service.GetStoresPaged(c.Request.Context(), filters, pagination.FromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Filtered stores retrieved successfully", resp)
}

// ========== GET /v1/stores/sales ==========
func (h *StoreHandler) TopSellers(c *gin.Context) {
	resp, err := h.service.GetTopSellingStores(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Success", resp)
}
