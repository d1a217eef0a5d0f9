package blooddonation

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public form and tracking routes on public and the
// review routes on admin. The caller gates admin.
func RegisterRoutes(public, admin *gin.RouterGroup, svc *Service, limit gin.HandlerFunc) {
	handler := NewHandler(svc)

	public.POST("/blood-donation", limit, handler.Submit)
	public.GET("/public/blood-donation/track/:requestNumber", handler.Track)

	donations := admin.Group("/blood-donations")
	{
		donations.GET("", handler.List)
		donations.GET("/:id", handler.Get)
		donations.PATCH("/:id/status", handler.UpdateStatus)
	}
}
