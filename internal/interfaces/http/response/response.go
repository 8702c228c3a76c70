package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "blockpharma.backend/internal/domain/errors"
	"blockpharma.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Message sends {"message", "data"}; data is omitted when nil
func Message(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// Error sends an error response. Sentinel errors are mapped to their status;
// the detail of a 500 is logged and never rendered.
func Error(c *gin.Context, err error) {
	appErr := domainerrors.FromError(err)

	if appErr.Status >= http.StatusInternalServerError {
		logger.Error(c, "request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// Abort is Error followed by c.Abort, for middleware
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
