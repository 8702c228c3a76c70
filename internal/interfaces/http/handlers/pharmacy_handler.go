package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blockpharma.backend/internal/domain/entities"
	"blockpharma.backend/internal/interfaces/http/response"
	"blockpharma.backend/internal/interfaces/http/validation"
	"blockpharma.backend/internal/usecases"
)

// PharmacyHandler handles pharmacy outlet endpoints
type PharmacyHandler struct {
	pharmacyUsecase *usecases.PharmacyUsecase
}

// NewPharmacyHandler creates a new pharmacy handler
func NewPharmacyHandler(pharmacyUsecase *usecases.PharmacyUsecase) *PharmacyHandler {
	return &PharmacyHandler{pharmacyUsecase: pharmacyUsecase}
}

// AddOutlet handles POST /api/pharmacy/outlet/add
func (h *PharmacyHandler) AddOutlet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var input entities.BusinessInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	outlet, err := h.pharmacyUsecase.AddOutlet(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Pharmacy outlet added successfully", outlet)
}

// GetOutlet handles GET /api/pharmacy/outlet/get/:id
func (h *PharmacyHandler) GetOutlet(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	outlet, err := h.pharmacyUsecase.GetOutlet(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, outlet)
}

// ListAll handles GET /api/pharmacy/outlet/getall
func (h *PharmacyHandler) ListAll(c *gin.Context) {
	outlets, err := h.pharmacyUsecase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, outlets)
}

// ListMine handles GET /api/pharmacy/outlet/mine
func (h *PharmacyHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	outlets, err := h.pharmacyUsecase.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, outlets)
}

// UpdateOutlet handles PUT /api/pharmacy/outlet/update/:id
func (h *PharmacyHandler) UpdateOutlet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var input entities.BusinessUpdateInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	outlet, err := h.pharmacyUsecase.UpdateOutlet(c.Request.Context(), id, userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Pharmacy outlet updated successfully", outlet)
}

// DeleteOutlet handles DELETE /api/pharmacy/outlet/delete/:id
func (h *PharmacyHandler) DeleteOutlet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.pharmacyUsecase.DeleteOutlet(c.Request.Context(), id, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Pharmacy outlet deleted successfully", nil)
}
