package handler

import (
	"net/http"

	"maventoys-backend/internal/domains/employee"
	"maventoys-backend/internal/shared/pagination"
	"maventoys-backend/internal/shared/request"
	"maventoys-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	service employee.EmployeeService
}

func NewEmployeeHandler(svc employee.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: svc}
}

// ========== GET /v1/employees ==========
func (h *EmployeeHandler) List(c *gin.Context) {
	resp, err := h.service.GetEmployees(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Active employees fetched successfully", resp)
}

// ========== GET /v1/employees/:id ==========
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetEmployeeByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Employee details fetched successfully", resp)
}

// ========== POST /v1/employees ==========
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req employee.CreateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateEmployee(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, "Employee created successfully", resp)
}

// ========== PATCH /v1/employees/:id and PUT /v1/employees/:id ==========
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req employee.UpdateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateEmployee(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Employee updated successfully", resp)
}

// ========== GET /v1/employees/:id/sales ==========
func (h *EmployeeHandler) Sales(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetSalesByEmployee(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Sale found successfully", resp)
}

// ========== GET /v1/employees/paged ==========
func (h *EmployeeHandler) Paged(c *gin.Context) {
	id, err := request.QueryInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filters := employee.PagedFilters{
		ID:        id,
		FirstName: request.QueryString(c, "firstName"),
		LastName:  request.QueryString(c, "lastName"),
	}

	resp, err := h.service.GetEmployeesPaged(c.Request.Context(), filters, pagination.FromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Employees retrieved successfully", resp)
}

// ========== GET /v1/employees/top-sellers ==========
func (h *EmployeeHandler) TopSellers(c *gin.Context) {
	resp, err := h.service.GetTopSellers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Success", resp)
}
