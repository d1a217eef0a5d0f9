package heroimages

import (
	"errors"
	"net/url"
	"strings"

	"github.com/xyz-asif/charityhub/internal/pkg/sanitize"
)

const (
	maxTitleLength    = 120
	maxSubtitleLength = 300
)

// apply copies the set fields of in onto img
func apply(img *HeroImage, in Input) error {
	if in.Title != nil {
		img.Title = sanitize.Text(*in.Title)
	}
	if in.Subtitle != nil {
		img.Subtitle = sanitize.Text(*in.Subtitle)
	}
	if in.ImageURL != nil {
		img.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	if in.Order != nil {
		img.Order = *in.Order
	}
	if in.IsActive != nil {
		img.IsActive = *in.IsActive
	}

	if img.Title == "" {
		return errors.New("title is required")
	}
	if len(img.Title) > maxTitleLength {
		return errors.New("title cannot exceed 120 characters")
	}
	if len(img.Subtitle) > maxSubtitleLength {
		return errors.New("subtitle cannot exceed 300 characters")
	}
	if img.Order < 0 {
		return errors.New("order cannot be negative")
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
