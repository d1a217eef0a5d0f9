package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/charityhub/internal/features/auth"
	"github.com/xyz-asif/charityhub/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Admin godoc
// @Summary Admin dashboard
// @Description Account counts and intake aggregates
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=AdminDashboard}
// @Failure 401 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /admin/dashboard [get]
func (h *Handler) Admin(c *gin.Context) {
	data, err := h.svc.Admin(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, data)
}

// User godoc
// @Summary User dashboard
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=UserDashboard}
// @Failure 401 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /user/dashboard [get]
func (h *Handler) User(c *gin.Context) {
	account, ok := auth.CurrentAccount(c)
	if !ok {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	data, err := h.svc.User(c.Request.Context(), account)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, data)
}
