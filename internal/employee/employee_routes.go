package employee

import (
	"github.com/gorvensalaveria/manila-payroll-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.List)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", middleware.RateLimitByIP(2, 5), handler.Create)
		employees.PUT("/:id", middleware.RateLimitByIP(2, 5), handler.Update)
		employees.DELETE("/:id", middleware.RateLimitByIP(1, 3), handler.Delete)
		employees.DELETE("", middleware.RateLimitByIP(1, 3), handler.BulkDelete)
	}
}
