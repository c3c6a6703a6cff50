package department

import (
	"github.com/gorvensalaveria/manila-payroll-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	departments := r.Group("/departments")
	{
		departments.GET("", handler.GetAll)
		departments.GET("/:id", handler.GetByID)
		departments.POST("", middleware.RateLimitByIP(2, 5), handler.Create)
		departments.PUT("/:id", middleware.RateLimitByIP(2, 5), handler.Update)
		departments.DELETE("/:id", middleware.RateLimitByIP(1, 3), handler.Delete)
	}
}
