// Package media hosts uploaded files on Cloudinary using server-held
// credentials. The upload handler depends on the Uploader interface so tests
// can stub the remote host.
package media

import (
	"context"
	"fmt"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type UploadOptions struct {
	Folder      string
	DisplayName string
}

type Result struct {
	URL      string
	PublicID string
	Width    int
	Height   int
	Bytes    int
	Format   string
}

type Uploader interface {
	Upload(ctx context.Context, path string, opts UploadOptions) (*Result, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary builds an uploader from explicit credentials.
func NewCloudinary(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// NewCloudinaryFromEnv reads the CLOUDINARY_* variables. A nil uploader with
// nil error means the credentials are simply not configured; the caller
// decides whether that is fatal.
func NewCloudinaryFromEnv() (*CloudinaryUploader, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	if cloudName == "" {
		return nil, nil
	}
	return NewCloudinary(cloudName, os.Getenv("CLOUDINARY_API_KEY"), os.Getenv("CLOUDINARY_API_SECRET"))
}

func (u *CloudinaryUploader) Upload(ctx context.Context, path string, opts UploadOptions) (*Result, error) {
	res, err := u.cld.Upload.Upload(ctx, path, uploader.UploadParams{
		Folder:         opts.Folder,
		DisplayName:    opts.DisplayName,
		Overwrite:      api.Bool(false),
		UseFilename:    api.Bool(false),
		UniqueFilename: api.Bool(false),
		ResourceType:   "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	return &Result{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Width:    res.Width,
		Height:   res.Height,
		Bytes:    res.Bytes,
		Format:   res.Format,
	}, nil
}
