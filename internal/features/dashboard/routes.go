package dashboard

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects admin and user to be gated by the caller
func RegisterRoutes(admin, user *gin.RouterGroup, svc *Service) {
	handler := NewHandler(svc)

	admin.GET("/dashboard", handler.Admin)
	user.GET("/dashboard", handler.User)
}
