package cloudinary

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateImageFile(t *testing.T) {
	require.NoError(t, ValidateImageFile(&multipart.FileHeader{Filename: "banner.JPG", Size: 1024}))
	require.Error(t, ValidateImageFile(&multipart.FileHeader{Filename: "banner.gif", Size: 1024}))
	require.Error(t, ValidateImageFile(&multipart.FileHeader{Filename: "banner.png", Size: MaxImageSize + 1}))
}

func TestNewService_RequiresCredentials(t *testing.T) {
	_, err := NewService("", "key", "secret", "")
	require.Error(t, err)

	svc, err := NewService("demo", "key", "secret", "")
	require.NoError(t, err)
	require.Equal(t, "charity", svc.uploadFolder)
}
