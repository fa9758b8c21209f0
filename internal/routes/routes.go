// Package routes assembles the Gin engine from the individual handlers.
package routes

import (
	"furnimarket_backend/internal/handlers"
	"furnimarket_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Router groups every handler the API mounts.
type Router struct {
	AuthHandler      *handlers.AuthHandler
	UserHandler      *handlers.UserHandler
	AdHandler        *handlers.AdHandler
	ReferenceHandler *handlers.ReferenceHandler

	UploadsBasePath string
	UploadsBaseURL  string
}

// Setup builds the engine with the common middleware chain, the API group
// and static serving of uploaded images.
func (r *Router) Setup() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.LoggingMiddleware())

	if r.UploadsBasePath != "" && r.UploadsBaseURL != "" {
		engine.Static(r.UploadsBaseURL, r.UploadsBasePath)
	}

	api := engine.Group("/api")
	r.AuthHandler.RegisterRoutes(api)
	r.UserHandler.RegisterRoutes(api)
	r.AdHandler.RegisterRoutes(api)
	r.ReferenceHandler.RegisterRoutes(api)

	return engine
}
