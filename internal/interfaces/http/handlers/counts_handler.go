package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blockpharma.backend/internal/domain/repositories"
	"blockpharma.backend/internal/interfaces/http/response"
)

// CountsHandler serves the public dashboard counters
type CountsHandler struct {
	countsRepo repositories.CountsRepository
}

// NewCountsHandler creates a new counts handler
func NewCountsHandler(countsRepo repositories.CountsRepository) *CountsHandler {
	return &CountsHandler{countsRepo: countsRepo}
}

// GetCounts returns users, suppliers, pharmacies and orders totals
// GET /api/counts
func (h *CountsHandler) GetCounts(c *gin.Context) {
	counts, err := h.countsRepo.DashboardCounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, counts)
}
