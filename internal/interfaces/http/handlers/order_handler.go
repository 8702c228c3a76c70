package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blockpharma.backend/internal/domain/entities"
	"blockpharma.backend/internal/interfaces/http/response"
	"blockpharma.backend/internal/interfaces/http/validation"
	"blockpharma.backend/internal/usecases"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderUsecase *usecases.OrderUsecase
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase *usecases.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var input entities.CreateOrderInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderUsecase.CreateOrder(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Order created successfully", order)
}

// UpdateOrderStatus handles PUT /api/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input entities.UpdateOrderStatusInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	order, err := h.orderUsecase.UpdateOrderStatus(c.Request.Context(), orderID, userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Order status updated", order)
}

// GetOrder handles GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	order, err := h.orderUsecase.GetOrder(c.Request.Context(), orderID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

// ListRecords returns the blockchain audit trail of an order
// GET /api/orders/:id/records
func (h *OrderHandler) ListRecords(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	records, err := h.orderUsecase.ListBlockchainRecords(c.Request.Context(), orderID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

// ListForPharmacist handles GET /api/orders/all
func (h *OrderHandler) ListForPharmacist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orders, err := h.orderUsecase.ListForPharmacist(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// ListForOutlet handles GET /api/orders/pharmacy/:pharmacyOutletId
func (h *OrderHandler) ListForOutlet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	outletID, ok := pathUUID(c, "pharmacyOutletId")
	if !ok {
		return
	}
	orders, err := h.orderUsecase.ListForOutlet(c.Request.Context(), outletID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// ListForSupplier handles GET /api/orders/vendor/:id. The path segment is
// ignored; the orders of every organization of the caller are returned.
func (h *OrderHandler) ListForSupplier(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orders, err := h.orderUsecase.ListForSupplier(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// ListPendingForSupplier handles GET /api/orders/vendor/pending
func (h *OrderHandler) ListPendingForSupplier(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orders, err := h.orderUsecase.ListPendingForSupplier(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}

// ListForVendor handles GET /api/orders/organization/:vendorOrgId
func (h *OrderHandler) ListForVendor(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	vendorOrgID, ok := pathUUID(c, "vendorOrgId")
	if !ok {
		return
	}
	orders, err := h.orderUsecase.ListForVendor(c.Request.Context(), vendorOrgID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orders)
}
