package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the rendering API under /api.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/aspect", h.aspect)
		api.GET("/qr", h.qr)
		api.POST("/validate", h.validate)
		api.POST("/layout", h.layout)
		api.POST("/render", h.renderCard)
	}
}
