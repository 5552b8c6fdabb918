package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Ручной сигнал об инциденте
	api.POST("/reports", h.createReport)

	// Маршруты для работы с инцидентами
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/assign", h.assignIncident)
		incidents.POST("/:id/auto-assign", h.autoAssignIncident)
	}

	// Состав агентов
	api.GET("/agents", h.listAgents)

	// Текущее состояние движка назначений
	api.GET("/engine", h.getEngineState)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
