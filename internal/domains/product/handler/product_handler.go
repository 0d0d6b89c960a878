package handler

import (
	"net/http"

	"maventoys-backend/internal/domains/product"
	"maventoys-backend/internal/shared/pagination"
	"maventoys-backend/internal/shared/request"
	"maventoys-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	service product.ProductService
}

func NewProductHandler(svc product.ProductService) *ProductHandler {
	return &ProductHandler{service: svc}
}

// ========== GET /v1/products ==========
func (h *ProductHandler) List(c *gin.Context) {
	resp, err := h.service.GetProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Active products retrieved successfully", resp)
}

// ========== GET /v1/products/:id ==========
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetProductByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Product details fetched successfully", resp)
}

// ========== POST /v1/products ==========
func (h *ProductHandler) Create(c *gin.Context) {
	var req product.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, "Product created successfully", resp)
}

// ========== PATCH /v1/products/:id and PUT /v1/products/:id ==========
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req product.UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Product updated successfully", resp)
}

// ========== GET /v1/products/:id/stock ==========
func (h *ProductHandler) Stock(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetStock(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Stock fetched successfully", resp)
}

// ========== GET /v1/products/:id/sales ==========
func (h *ProductHandler) Sales(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetSalesByProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Sale data for product retrieved successfully", resp)
}

// ========== GET /v1/products/:id/price-history ==========
func (h *ProductHandler) PriceHistory(c *gin.Context) {
	id, err := request.ParamInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.GetPriceHistory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Price history retrieved successfully", resp)
}

// ========== GET /v1/products/paged ==========
func (h *ProductHandler) Paged(c *gin.Context) {
	id, err := request.QueryInt(c, "id")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filters := product.PagedFilters{
		ID:   id,
		Name: request.QueryString(c, "name"),
	}

	resp, err := h.service.GetProductsPaged(c.Request.Context(), filters, pagination.FromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Paged products retrieved successfully", resp)
}

// ========== GET /v1/products/category/best-sellers?categoryId= ==========
func (h *ProductHandler) BestSellers(c *gin.Context) {
	categoryID, err := request.QueryInt(c, "categoryId")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if categoryID == nil {
		response.BadRequest(c, "categoryId is required")
		return
	}

	resp, err := h.service.GetBestSellersByCategory(c.Request.Context(), *categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "Best sellers retrieved successfully", resp)
}
