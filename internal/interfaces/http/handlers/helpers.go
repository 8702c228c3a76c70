package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "blockpharma.backend/internal/domain/errors"
	"blockpharma.backend/internal/interfaces/http/middleware"
	"blockpharma.backend/internal/interfaces/http/response"
	"blockpharma.backend/pkg/utils"
)

// currentUserID returns the authenticated user id or renders a 401.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == uuid.Nil {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return uuid.Nil, false
	}
	return userID, true
}

// pathUUID parses the named path parameter or renders a 400.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

func pageQuery(c *gin.Context) (utils.Page, bool) {
	var p utils.Page
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, domainerrors.BadRequest("page and limit must be integers"))
		return p, false
	}
	return utils.NormalizePage(p.Page, p.Limit), true
}
