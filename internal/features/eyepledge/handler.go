package eyepledge

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/charityhub/internal/features/intake"
	"github.com/xyz-asif/charityhub/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Pledge godoc
// @Summary Pledge eye donation
// @Tags eye-donation
// @Accept json
// @Produce json
// @Param request body PledgeRequest true "Pledge form"
// @Success 201 {object} response.APIResponse{data=PledgeResponse}
// @Failure 400 {object} response.APIResponse
// @Failure 429 {object} response.APIResponse
// @Router /eye-donation/pledge [post]
func (h *Handler) Pledge(c *gin.Context) {
	var req PledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	result, err := h.svc.Pledge(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, result, "Eye donation pledge submitted successfully")
}

// Track godoc
// @Summary Track an eye donation pledge
// @Tags eye-donation
// @Produce json
// @Param pledgeNumber path string true "Pledge number"
// @Success 200 {object} response.APIResponse{data=intake.TrackView}
// @Failure 404 {object} response.APIResponse
// @Router /public/eye-donation/track/{pledgeNumber} [get]
func (h *Handler) Track(c *gin.Context) {
	view, err := h.svc.Track(c.Request.Context(), c.Param("pledgeNumber"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, view)
}

// List godoc
// @Summary List eye donation pledges
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param search query string false "Matches pledge number, name or phone"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.APIResponse{data=response.PaginatedData}
// @Router /admin/eye-pledges [get]
func (h *Handler) List(c *gin.Context) {
	var q intake.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindJSONError(c, err)
		return
	}

	items, page, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, items, page.Total, page.Limit, page.Page)
}

// Get godoc
// @Summary Get an eye donation pledge
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pledge ID"
// @Success 200 {object} response.APIResponse{data=EyePledge}
// @Router /admin/eye-pledges/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, p)
}

// UpdateStatus godoc
// @Summary Change the status of a pledge
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pledge ID"
// @Param request body intake.StatusUpdateRequest true "New status"
// @Success 200 {object} response.APIResponse{data=EyePledge}
// @Router /admin/eye-pledges/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req intake.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	p, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, p, "Status updated")
}
