package heroimages

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/charityhub/internal/pkg/cloudinary"
	"github.com/xyz-asif/charityhub/internal/pkg/logger"
	apperrors "github.com/xyz-asif/charityhub/pkg/errors"
)

const uploadSubfolder = "hero-images"

// ImageHost stores uploaded images. *cloudinary.Service implements it.
type ImageHost interface {
	UploadImage(ctx context.Context, file multipart.File, subfolder string) (*cloudinary.UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

// Upload is an image file received with a request
type Upload struct {
	File   multipart.File
	Header *multipart.FileHeader
}

type Service struct {
	store Store
	host  ImageHost
	now   func() time.Time
}

// NewService accepts a nil host; uploads are then refused and only image URLs are accepted.
func NewService(store Store, host ImageHost) *Service {
	return &Service{store: store, host: host, now: time.Now}
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]HeroImage, error) {
	images, err := s.store.List(ctx, activeOnly)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch hero images", err)
	}
	return images, nil
}

func (s *Service) Get(ctx context.Context, id string) (*HeroImage, error) {
	img, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch hero image", err)
	}
	if img == nil {
		return nil, apperrors.NotFound("Hero image not found")
	}
	return img, nil
}

// Create needs either an uploaded file or an imageUrl
func (s *Service) Create(ctx context.Context, in Input, upload *Upload) (*HeroImage, error) {
	now := s.now()
	img := &HeroImage{IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := apply(img, in); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if err := s.attach(ctx, img, upload); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, img); err != nil {
		s.discard(ctx, img.PublicID)
		return nil, apperrors.Internal("Failed to save hero image", err)
	}
	return img, nil
}

// Update applies the set fields, replaces the image when a new one is given
// and touches updatedAt.
func (s *Service) Update(ctx context.Context, id string, in Input, upload *Upload) (*HeroImage, error) {
	img, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := img.PublicID
	previousURL := img.ImageURL

	if err := apply(img, in); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if upload != nil || img.ImageURL != previousURL {
		if err := s.attach(ctx, img, upload); err != nil {
			return nil, err
		}
	}

	img.UpdatedAt = s.now()
	if err := s.store.Save(ctx, img); err != nil {
		if img.PublicID != previous {
			s.discard(ctx, img.PublicID)
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Hero image not found")
		}
		return nil, apperrors.Internal("Failed to save hero image", err)
	}

	if previous != "" && previous != img.PublicID {
		s.discard(ctx, previous)
	}
	return img, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	img, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, img.ID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NotFound("Hero image not found")
		}
		return apperrors.Internal("Failed to delete hero image", err)
	}
	s.discard(ctx, img.PublicID)
	return nil
}

// attach uploads the file, or checks the image URL when no file was sent
func (s *Service) attach(ctx context.Context, img *HeroImage, upload *Upload) error {
	if upload == nil {
		if !isHTTPURL(img.ImageURL) {
			return apperrors.Validation("An image file or a valid imageUrl is required")
		}
		img.PublicID = ""
		return nil
	}

	if s.host == nil {
		return apperrors.Validation("Image upload is not configured; provide an imageUrl instead")
	}
	if err := cloudinary.ValidateImageFile(upload.Header); err != nil {
		return apperrors.Validation(err.Error())
	}

	result, err := s.host.UploadImage(ctx, upload.File, uploadSubfolder)
	if err != nil {
		return apperrors.Internal("Failed to upload image", err)
	}
	img.ImageURL = result.URL
	img.PublicID = result.PublicID
	return nil
}

// discard removes a hosted image, logging failures
func (s *Service) discard(ctx context.Context, publicID string) {
	if publicID == "" || s.host == nil {
		return
	}
	if err := s.host.Delete(ctx, publicID); err != nil {
		logger.Warn("failed to delete hosted image",
			logger.String("publicId", publicID),
			logger.Err(err))
	}
}
