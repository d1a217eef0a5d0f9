package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /auth on router. limit guards the credential endpoints.
func RegisterRoutes(router *gin.RouterGroup, svc *Service, limit gin.HandlerFunc) {
	handler := NewHandler(svc)
	authenticate := Authenticate(svc)

	auth := router.Group("/auth")
	{
		auth.POST("/register", limit, handler.Register)
		auth.POST("/login", limit, handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/verify", authenticate, handler.Verify)
		auth.GET("/me", authenticate, handler.Verify)
	}
}
