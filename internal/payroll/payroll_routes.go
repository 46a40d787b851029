package payroll

import (
	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	payrolls := r.Group("/payrolls")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.GET("/me", middleware.Authorize(enforcer, "payrolls", "read"), h.Me)
		payrolls.GET("", middleware.Authorize(enforcer, "payrolls", "read_all"), h.GetAll)
		payrolls.GET("/export", middleware.Authorize(enforcer, "payrolls", "export"), h.Export)
	}
}
