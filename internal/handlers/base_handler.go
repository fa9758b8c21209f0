// Package handlers contains the Gin HTTP handlers. Handlers only bind and
// validate input, delegate to services and translate errors; no business
// logic lives here.
package handlers

import (
	"errors"
	"strconv"

	"furnimarket_backend/internal/appErrors"
	"furnimarket_backend/internal/services/dto"
	"furnimarket_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// BaseHandler bundles the binding and validation plumbing shared by every
// handler.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindJSON binds the request body and validates the result. On failure the
// error response is already written and false is returned.
func (h BaseHandler) BindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		appErrors.HandleError(c, appErrors.InvalidArgument("malformed request body: "+err.Error()))
		return false
	}
	return h.validateBound(c, target)
}

// BindQuery binds query parameters and validates the result.
func (h BaseHandler) BindQuery(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindQuery(target); err != nil {
		appErrors.HandleError(c, appErrors.InvalidArgument("malformed query parameters: "+err.Error()))
		return false
	}
	return h.validateBound(c, target)
}

// Validate runs struct validation alone, for DTOs built in the handler.
func (h BaseHandler) Validate(c *gin.Context, target interface{}) bool {
	return h.validateBound(c, target)
}

func (h BaseHandler) validateBound(c *gin.Context, target interface{}) bool {
	if err := h.validator.Validate(target); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			appErrors.HandleValidationError(c, vErr.Errors)
		} else {
			appErrors.HandleError(c, err)
		}
		return false
	}
	return true
}

// UintParam parses a numeric path parameter.
func UintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		appErrors.HandleError(c, appErrors.InvalidArgument(name+" must be a positive integer"))
		return 0, false
	}
	return uint(value), true
}

// handleFieldError maps a dto.FieldError to an invalid-argument response.
func handleFieldError(c *gin.Context, err error) {
	var fieldErr *dto.FieldError
	if errors.As(err, &fieldErr) {
		appErrors.HandleError(c, appErrors.InvalidArgument(fieldErr.Error()))
		return
	}
	appErrors.HandleError(c, err)
}
