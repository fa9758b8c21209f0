package appErrors

import (
	"furnimarket_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError translates any error into the standard JSON error response.
// Unknown errors are wrapped as internal errors so no detail leaks.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.Error("server error", "error", err, "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleValidationError reports structured field-level validation failures.
func HandleValidationError(c *gin.Context, details interface{}) {
	HandleError(c, ValidationError(details))
}
