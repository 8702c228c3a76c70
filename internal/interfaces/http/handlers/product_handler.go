package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blockpharma.backend/internal/domain/entities"
	"blockpharma.backend/internal/interfaces/http/response"
	"blockpharma.backend/internal/interfaces/http/validation"
	"blockpharma.backend/internal/usecases"
)

// ProductHandler handles catalogue endpoints
type ProductHandler struct {
	productUsecase *usecases.ProductUsecase
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase *usecases.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var input entities.ProductInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	product, err := h.productUsecase.CreateProduct(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Product created successfully", product)
}

// CreateBulk inserts many products in one transaction
// POST /api/products/bulk
func (h *ProductHandler) CreateBulk(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var input entities.BulkProductInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	products, err := h.productUsecase.CreateBulk(c.Request.Context(), userID, input.Products)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Products created successfully", products)
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	product, err := h.productUsecase.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// ListByVendor handles GET /api/products/vendor/:vendorOrgId?page=&limit=
func (h *ProductHandler) ListByVendor(c *gin.Context) {
	vendorOrgID, ok := pathUUID(c, "vendorOrgId")
	if !ok {
		return
	}
	page, ok := pageQuery(c)
	if !ok {
		return
	}

	products, meta, err := h.productUsecase.ListByVendor(c.Request.Context(), vendorOrgID, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": products,
		"meta":  meta,
	})
}

// UpdateProduct handles PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input entities.ProductUpdateInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	product, err := h.productUsecase.UpdateProduct(c.Request.Context(), id, userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.productUsecase.DeleteProduct(c.Request.Context(), id, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Product deleted successfully", nil)
}
