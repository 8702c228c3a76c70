package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blockpharma.backend/internal/domain/entities"
	domainerrors "blockpharma.backend/internal/domain/errors"
	"blockpharma.backend/internal/interfaces/http/response"
	"blockpharma.backend/internal/interfaces/http/validation"
	"blockpharma.backend/internal/usecases"
)

// UserHandler handles account endpoints
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// Register handles user registration
// POST /api/user/register
func (h *UserHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles user login
// POST /api/user/login
func (h *UserHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	auth, err := h.userUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Login successful", auth)
}

// Me returns the authenticated user
// GET /api/user/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.userUsecase.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// GetDetails returns the user named by ?id=, or the caller when absent
// GET /api/user/get-details
func (h *UserHandler) GetDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if raw := c.Query("id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("Invalid id"))
			return
		}
		userID = id
	}

	user, err := h.userUsecase.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User details fetched", user)
}

// UpdateUser updates the caller's details
// PUT /api/user/update
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var input entities.UpdateUserInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userUsecase.UpdateUser(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User updated successfully", user)
}

// UpgradeUser changes the caller's role
// PUT /api/user/upgrade-user
func (h *UserHandler) UpgradeUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var input entities.UpgradeUserInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userUsecase.UpgradeUser(c.Request.Context(), userID, input.Role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User role upgraded", user)
}

// ChangePassword replaces the caller's password
// PUT /api/user/change-password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var input entities.ChangePasswordInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.userUsecase.ChangePassword(c.Request.Context(), userID, &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Password changed successfully", nil)
}

// CompleteProfile sets role, contact details and address in one step
// PUT /api/user/complete-profile
func (h *UserHandler) CompleteProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var input entities.CompleteProfileInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userUsecase.CompleteProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Profile completed", user)
}

// AddAddress handles POST /api/user/add-address
func (h *UserHandler) AddAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var input entities.AddressInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	address, err := h.userUsecase.AddAddress(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Address added", address)
}

// UpdateAddress handles PUT /api/user/update-address
func (h *UserHandler) UpdateAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var input entities.AddressInput
	if err := validation.BindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	address, err := h.userUsecase.UpdateAddress(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Address updated", address)
}

// DeleteUser soft-deletes the caller
// DELETE /api/user/delete
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.userUsecase.DeleteUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User deleted successfully", nil)
}

// ListUsers lists active users
// GET /api/user/getAll?page=&limit=
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, ok := pageQuery(c)
	if !ok {
		return
	}
	users, meta, err := h.userUsecase.ListUsers(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": users,
		"meta":  meta,
	})
}
