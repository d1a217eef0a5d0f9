package blooddonation

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

// Submit godoc
// @Summary Submit a blood donation form
// @Description Public donor or patient submission. Returns the assigned request number.
// @Tags blood-donation
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Donor or patient form"
// @Success 201 {object} response.APIResponse{data=SubmitResponse}
// @Failure 400 {object} response.APIResponse
// @Failure 429 {object} response.APIResponse
// @Failure 500 {object} response.APIResponse
// @Router /blood-donation [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, result, "Blood donation form submitted successfully")
}

// Track godoc
// @Summary Track a blood donation request
// @Tags blood-donation
// @Produce json
// @Param requestNumber path string true "Request number" example(BDD-2024-000001)
// @Success 200 {object} response.APIResponse{data=intake.TrackView}
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /public/blood-donation/track/{requestNumber} [get]
func (h *Handler) Track(c *gin.Context) {
	view, err := h.svc.Track(c.Request.Context(), c.Param("requestNumber"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, view)
}

// List godoc
// @Summary List blood donations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param type query string false "donor or patient"
// @Param status query string false "Status filter"
// @Param search query string false "Matches request number, name or phone"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} response.APIResponse{data=response.PaginatedData}
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /admin/blood-donations [get]
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
// @Summary Get a blood donation record
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} response.APIResponse{data=BloodDonation}
// @Failure 404 {object} response.APIResponse
// @Router /admin/blood-donations/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	d, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, d)
}

// UpdateStatus godoc
// @Summary Change the status of a blood donation record
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Param request body intake.StatusUpdateRequest true "New status"
// @Success 200 {object} response.APIResponse{data=BloodDonation}
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/blood-donations/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req intake.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	d, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, d, "Status updated")
}
