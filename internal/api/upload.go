package api

import (
	"context"
	"io"

	"collegehub/internal/models"
)

// DefaultUploadFolder is where assets land when the caller does not pick one.
const DefaultUploadFolder = "college-hub"

type UploadService struct {
	client *Client
}

// UploadImage uploads a file with the image preset.
func (s *UploadService) UploadImage(ctx context.Context, filename string, r io.Reader, folder string) (*models.UploadResult, error) {
	return s.upload(ctx, filename, r, folder, "image")
}

// UploadAny uploads a file letting the media host detect the resource type.
func (s *UploadService) UploadAny(ctx context.Context, filename string, r io.Reader, folder string) (*models.UploadResult, error) {
	return s.upload(ctx, filename, r, folder, "auto")
}

func (s *UploadService) upload(ctx context.Context, filename string, r io.Reader, folder, resourceType string) (*models.UploadResult, error) {
	if folder == "" {
		folder = DefaultUploadFolder
	}
	return s.client.UploadFile(ctx, "/api/upload", filename, r, map[string]string{
		"resourceType": resourceType,
		"folder":       folder,
	})
}
