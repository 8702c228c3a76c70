package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blockpharma.backend/internal/domain/entities"
	"blockpharma.backend/internal/interfaces/http/response"
	"blockpharma.backend/internal/interfaces/http/validation"
	"blockpharma.backend/internal/usecases"
)

// InventoryHandler handles outlet stock endpoints
type InventoryHandler struct {
	inventoryUsecase *usecases.InventoryUsecase
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryUsecase *usecases.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{inventoryUsecase: inventoryUsecase}
}

// AddToInventory creates a line (201) or restocks the existing one (200)
// POST /api/inventory
func (h *InventoryHandler) AddToInventory(c *gin.Context) {
	var input entities.AddInventoryInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.inventoryUsecase.AddToInventory(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	if result.Restocked {
		response.Message(c, http.StatusOK, "Inventory restocked", result.Item)
		return
	}
	response.Message(c, http.StatusCreated, "New inventory item added", result.Item)
}

// GetInventoryByPharmacy handles GET /api/inventory/:pharmacyOutletId
func (h *InventoryHandler) GetInventoryByPharmacy(c *gin.Context) {
	outletID, ok := pathUUID(c, "pharmacyOutletId")
	if !ok {
		return
	}
	items, err := h.inventoryUsecase.GetInventoryByPharmacy(c.Request.Context(), outletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// UpdateInventoryItem handles PUT /api/inventory/:id
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input entities.UpdateInventoryInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.inventoryUsecase.UpdateInventoryItem(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Inventory item updated", item)
}

// DeleteInventoryItem handles DELETE /api/inventory/:id
func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.inventoryUsecase.DeleteInventoryItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Inventory item deleted", nil)
}
