package handler

import (
	"net/http"

	"maventoys-backend/internal/domains/category"
	"maventoys-backend/internal/shared/pagination"
	"maventoys-backend/internal/shared/request"
	"maventoys-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service category.CategoryService
}

func NewCategoryHandler(svc category.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// ========== GET /v1/categories ==========
func (h *CategoryHandler) List(c *gin.Context) {
	resp, err := h.service.GetCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Categories retrieved successfully", resp)
}

// ========== GET /v1/categories/:id ==========
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Category details fetched successfully", resp)
}

// ========== POST /v1/categories ==========
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, "Category created successfully", resp)
}

// ========== PATCH /v1/categories/:id and PUT /v1/categories/:id ==========
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req category.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Category updated successfully", resp)
}

// ========== GET /v1/categories/:id/products ==========
func (h *CategoryHandler) Products(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetProductsByCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Products data for the category retrieved successfully", resp)
}

// ========== GET /v1/categories/paged ==========
func (h *CategoryHandler) Paged(c *gin.Context) {
	id, err := request.QueryInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filters := category.PagedFilters{
		ID:   id,
		Name: request.QueryString(c, "name"),
	}

	resp, err := h.service.GetCategoriesPaged(c.Request.Context(), filters, pagination.FromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "All categories retrieved successfully", resp)
}

// ========== GET /v1/categories/sales ==========
func (h *CategoryHandler) Sales(c *gin.Context) {
	resp, err := h.service.GetSalesByCategory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Success", resp)
}
