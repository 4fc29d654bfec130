package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Client uploads site assets (gallery shots, team photos, logos) and returns
// delivery URLs with optimization transformations applied.
type Client interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (url string, err error)
	DeleteByPublicID(ctx context.Context, publicID string) error
}

const (
	imageEager = "q_auto,f_auto,w_1200,c_limit"
	ImageWidth = 1200
)

var eagerAsyncFalse = false

type clientImpl struct {
	cloudName string
	uploader  *uploader.API
}

// NewClientFromParams builds a client from explicit credentials. Returns an
// error when credentials are malformed; callers treat a nil client as
// "uploads disabled".
func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &clientImpl{cloudName: cloudName, uploader: &cld.Upload}, nil
}

// BuildOptimizedImageURL returns a delivery URL with transformations for an
// existing public ID.
func BuildOptimizedImageURL(cloudName, publicID string, width int) string {
	if width <= 0 {
		width = ImageWidth
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/q_auto,f_auto,w_%d,c_limit/%s",
		cloudName, width, publicID)
}

func (c *clientImpl) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (string, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:     folder,
		PublicID:   publicID,
		Eager:      imageEager,
		EagerAsync: &eagerAsyncFalse,
	})
	if err != nil {
		return "", err
	}
	if len(result.Eager) > 0 {
		return result.Eager[0].SecureURL, nil
	}
	return result.SecureURL, nil
}

func (c *clientImpl) DeleteByPublicID(ctx context.Context, publicID string) error {
	_, err := c.uploader.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
