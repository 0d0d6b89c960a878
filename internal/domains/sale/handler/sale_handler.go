package handler

import (
	"net/http"
	"time"

	"maventoys-backend/internal/domains/sale"
	"maventoys-backend/internal/shared/pagination"
	"maventoys-backend/internal/shared/request"
	"maventoys-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// dateLayout is the wire format of the byDateRange query parameters.
const dateLayout = "2006-01-02"

type SaleHandler struct {
	service sale.SaleService
}

func NewSaleHandler(svc sale.SaleService) *SaleHandler {
	return &SaleHandler{service: svc}
}

// ========== GET /v1/sales?page=&size= ==========
func (h *SaleHandler) List(c *gin.Context) {
	resp, err := h.service.GetSales(c.Request.Context(), pagination.FromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "All sales fetched successfully", resp)
}

// ========== GET /v1/sales/:id ==========
func (h *SaleHandler) GetByID(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetSaleByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Sale details fetched successfully", resp)
}

// ========== POST /v1/sales ==========
func (h *SaleHandler) Create(c *gin.Context) {
	var req sale.CreateSaleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	for _, line := range req.Products {
		if err := line.Validate(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	resp, err := h.service.CreateSale(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, "Sale created successfully", resp)
}

// ========== PATCH /v1/sales/:id and PUT /v1/sales/:id ==========
func (h *SaleHandler) Update(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req sale.UpdateSaleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateSale(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Sale updated successfully", resp)
}

// ========== GET /v1/sales/byDateRange?startDate=&endDate= ==========
func (h *SaleHandler) ByDateRange(c *gin.Context) {
	start, err := time.Parse(dateLayout, c.Query("startDate"))
	if err != nil {
		response.BadRequest(c, "invalid startDate: expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, c.Query("endDate"))
	if err != nil {
		response.BadRequest(c, "invalid endDate: expected YYYY-MM-DD")
		return
	}

	resp, err := h.service.GetSalesByDateRange(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Sale fetched successfully", resp)
}

// ========== GET /v1/sales/paged ==========
func (h *SaleHandler) Paged(c *gin.Context) {
	id, err := request.QueryInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	storeID, err := request.QueryInt(c, "storeId")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	employeeID, err := request.QueryInt(c, "employeeId")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filters := sale.PagedFilters{
		ID:         id,
		StoreID:    storeID,
		EmployeeID: employeeID,
	}

	resp, err := h.service.GetSalesPaged(c.Request.Context(), filters, pagination.FromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "All sales retrieved successfully", resp)
}
