package heroimages

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/charityhub/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// bind reads fields from a multipart form (with an optional "image" file) or a JSON body.
// The returned upload, when not nil, must be closed by the caller.
func bind(c *gin.Context) (Input, *Upload, error) {
	var in Input

	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		err := c.ShouldBindJSON(&in)
		return in, nil, err
	}

	if err := c.ShouldBind(&in); err != nil {
		return in, nil, err
	}
	file, header, err := c.Request.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil, nil
	}
	if err != nil {
		return in, nil, err
	}
	return in, &Upload{File: file, Header: header}, nil
}

// PublicList godoc
// @Summary Active hero images
// @Tags content
// @Produce json
// @Success 200 {object} response.APIResponse{data=[]HeroImage}
// @Router /public/hero-images [get]
func (h *Handler) PublicList(c *gin.Context) {
	images, err := h.svc.List(c.Request.Context(), true)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, images)
}

// List godoc
// @Summary All hero images
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=[]HeroImage}
// @Router /admin/content/hero-images [get]
func (h *Handler) List(c *gin.Context) {
	images, err := h.svc.List(c.Request.Context(), false)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, images)
}

// Create godoc
// @Summary Create a hero image
// @Description Multipart with an "image" file, or JSON with imageUrl
// @Tags admin
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param subtitle formData string false "Subtitle"
// @Param order formData int false "Display order"
// @Param isActive formData bool false "Shown publicly"
// @Param image formData file false "Image file"
// @Success 201 {object} response.APIResponse{data=HeroImage}
// @Failure 400 {object} response.APIResponse
// @Router /admin/content/hero-images [post]
func (h *Handler) Create(c *gin.Context) {
	in, upload, err := bind(c)
	if err != nil {
		response.BindJSONError(c, err)
		return
	}
	if upload != nil {
		defer upload.File.Close()
	}

	img, err := h.svc.Create(c.Request.Context(), in, upload)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, img, "Hero image created")
}

// Update godoc
// @Summary Update a hero image
// @Tags admin
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hero image ID"
// @Success 200 {object} response.APIResponse{data=HeroImage}
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/content/hero-images/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	in, upload, err := bind(c)
	if err != nil {
		response.BindJSONError(c, err)
		return
	}
	if upload != nil {
		defer upload.File.Close()
	}

	img, err := h.svc.Update(c.Request.Context(), c.Param("id"), in, upload)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, img, "Hero image updated")
}

// Delete godoc
// @Summary Delete a hero image
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hero image ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /admin/content/hero-images/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, nil, "Hero image deleted")
}
