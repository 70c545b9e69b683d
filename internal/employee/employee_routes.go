package employee

import (
	"go-employee-form/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/Employee")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetByID)

		employees.POST("",
			middleware.RateLimitByIP(2, 5),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(1, 2),
			handler.Delete,
		)
	}
}
