package user

import (
	"github.com/gorvensalaveria/manila-payroll-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	{
		users.GET("", handler.GetAll)
		users.GET("/:id", handler.GetByID)
		users.POST("", middleware.RateLimitByIP(1, 3), handler.Create)
		users.PUT("/:id", middleware.RateLimitByIP(1, 3), handler.Update)
		users.DELETE("/:id", middleware.RateLimitByIP(1, 3), handler.Delete)
	}
}
