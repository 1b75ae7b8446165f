package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, h *Handler) {
	// CORS middleware for public API access
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/health", h.HandleHealth)

	router.GET("/info", h.HandleInfo)
	router.GET("/", h.HandleInfo)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/compress", h.HandleCompress)
		v1.POST("/decompress", h.HandleDecompress)
		v1.POST("/analyze", h.HandleAnalyze)
		v1.GET("/info", h.HandleInfo)
		v1.GET("/health", h.HandleHealth)
	}

	// Legacy routes for backward compatibility
	router.POST("/compress", h.HandleCompress)
	router.POST("/decompress", h.HandleDecompress)
}

// NewRouter builds a gin engine with logging, recovery and all routes
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	SetupRoutes(router, h)
	return router
}
