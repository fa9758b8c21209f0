package handlers

import (
	"net/http"

	"furnimarket_backend/internal/appErrors"
	"furnimarket_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	BaseHandler
	referenceService *services.ReferenceService
}

func NewReferenceHandler(base BaseHandler, referenceService *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		BaseHandler:      base,
		referenceService: referenceService,
	}
}

// RegisterRoutes mounts the public reference-data endpoints.
func (h *ReferenceHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/categories", h.GetCategories)
	api.GET("/cities", h.GetCities)
}

func (h *ReferenceHandler) GetCategories(c *gin.Context) {
	categories, err := h.referenceService.GetCategories()
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *ReferenceHandler) GetCities(c *gin.Context) {
	cities, err := h.referenceService.GetCities()
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}
