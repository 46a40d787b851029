package attendance

import (
	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		// GetAll authorizes internally: read_all widens the view, plain
		// read restricts it to the caller's own ledger.
		attendances.GET("", h.GetAll)
		attendances.GET("/status", middleware.Authorize(enforcer, "attendances", "read"), h.Status)
		attendances.POST("/check-in", middleware.Authorize(enforcer, "attendances", "create"), h.CheckIn)
		attendances.POST("/check-out", middleware.Authorize(enforcer, "attendances", "create"), h.CheckOut)
	}
}
