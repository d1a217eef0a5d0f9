package eyepledge

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(public, admin *gin.RouterGroup, svc *Service, limit gin.HandlerFunc) {
	handler := NewHandler(svc)

	public.POST("/eye-donation/pledge", limit, handler.Pledge)
	public.GET("/public/eye-donation/track/:pledgeNumber", handler.Track)

	pledges := admin.Group("/eye-pledges")
	{
		pledges.GET("", handler.List)
		pledges.GET("/:id", handler.Get)
		pledges.PATCH("/:id/status", handler.UpdateStatus)
	}
}
