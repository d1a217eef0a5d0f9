package heroimages

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public, user and admin views. user and admin are gated by the caller.
func RegisterRoutes(public, user, admin *gin.RouterGroup, svc *Service) {
	handler := NewHandler(svc)

	public.GET("/public/hero-images", handler.PublicList)
	user.GET("/content/hero-images", handler.PublicList)

	images := admin.Group("/content/hero-images")
	{
		images.GET("", handler.List)
		images.POST("", handler.Create)
		images.PUT("/:id", handler.Update)
		images.DELETE("/:id", handler.Delete)
	}
}
