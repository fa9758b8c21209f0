package handlers

import (
	"net/http"

	"furnimarket_backend/internal/appErrors"
	"furnimarket_backend/internal/services"
	"furnimarket_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	authService *services.AuthService
}

func NewAuthHandler(base BaseHandler, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/auth/login", h.Login)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in dto.LoginRequest
	if !h.BindJSON(c, &in) {
		return
	}
	resp, err := h.authService.Authenticate(in)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
