package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	secured := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	categories := secured.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}

	institutions := secured.Group("/institutions")
	{
		institutions.POST("", h.createInstitution)
		institutions.GET("", h.listInstitutions)
		institutions.GET("/:id", h.getInstitution)
		institutions.PUT("/:id", h.updateInstitution)
		institutions.DELETE("/:id", h.deleteInstitution)
	}

	reports := secured.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
		reports.PUT("/:id", h.updateReport)
		reports.DELETE("/:id", h.deleteReport)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
