package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/Nayanthi-Weerasuriya/SmartHR-Employee-Manager/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	auth := r.Group("/auth")
	{
		// Brute-force guard on credential verification only.
		auth.POST("/login", middleware.RateLimitByIP(1, 5), h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), h.Me)
	}
}
