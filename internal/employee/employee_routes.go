package employee

import (
	"github.com/sameers07/Employee-API/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		// Literal paths first; /:employee_id must never capture
		// avg-salary or search.
		employees.GET("", handler.List)
		employees.GET("/avg-salary", handler.AvgSalary)
		employees.GET("/search", handler.SearchBySkill)
		employees.GET("/:employee_id", handler.GetByEmployeeID)

		employees.POST("",
			middleware.RateLimitByIP(5, 10),
			handler.Create,
		)
		employees.PUT("/:employee_id",
			middleware.RateLimitByIP(5, 10),
			handler.Update,
		)
		employees.DELETE("/:employee_id",
			middleware.RateLimitByIP(1, 5),
			handler.Delete,
		)
	}
}
