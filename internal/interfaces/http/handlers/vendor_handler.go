package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blockpharma.backend/internal/domain/entities"
	"blockpharma.backend/internal/interfaces/http/middleware"
	"blockpharma.backend/internal/interfaces/http/response"
	"blockpharma.backend/internal/interfaces/http/validation"
	"blockpharma.backend/internal/usecases"
)

// VendorHandler handles supplier organization endpoints
type VendorHandler struct {
	vendorUsecase *usecases.VendorUsecase
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorUsecase *usecases.VendorUsecase) *VendorHandler {
	return &VendorHandler{vendorUsecase: vendorUsecase}
}

// AddOrganization registers an organization for the calling supplier
// POST /api/supplier/add
func (h *VendorHandler) AddOrganization(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var input entities.BusinessInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	org, err := h.vendorUsecase.AddOrganization(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Organization added successfully", org)
}

// ListMine lists the caller's organizations
// GET /api/supplier/get
func (h *VendorHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	orgs, err := h.vendorUsecase.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orgs)
}

// GetOrganization handles GET /api/supplier/get/:id
func (h *VendorHandler) GetOrganization(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	org, err := h.vendorUsecase.GetOrganization(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, org)
}

// ListAll handles GET /api/supplier/getAll
func (h *VendorHandler) ListAll(c *gin.Context) {
	orgs, err := h.vendorUsecase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, orgs)
}

// UpdateOrganization handles PUT /api/supplier/update/:id
func (h *VendorHandler) UpdateOrganization(c *gin.Context) {
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

	org, err := h.vendorUsecase.UpdateOrganization(c.Request.Context(), id, userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Organization updated successfully", org)
}

// DeleteOrganization handles DELETE /api/supplier/delete/:id
func (h *VendorHandler) DeleteOrganization(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.vendorUsecase.DeleteOrganization(c.Request.Context(), id, userID, role); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Organization deleted successfully", nil)
}

// ToggleStatus flips isActive
// PUT /api/supplier/toggle/:id
func (h *VendorHandler) ToggleStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	org, err := h.vendorUsecase.ToggleStatus(c.Request.Context(), id, userID, role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Organization status updated", org)
}
