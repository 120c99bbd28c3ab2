package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/:incidentNumber", h.getIncidentDetail)
	}

	api.GET("/stations", h.listStations)

	api.GET("/health", h.healthCheck)
}
