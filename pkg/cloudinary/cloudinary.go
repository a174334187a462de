package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Client stores scanned cheque images.
type Client interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (Image, error)
	Delete(ctx context.Context, publicID string) error
}

type Image struct {
	URL          string
	ThumbnailURL string
	PublicID     string
}

// Scans are kept legible: auto format, auto quality, no crop.
const (
	imageEager = "q_auto,f_auto,w_1600,c_limit"
	ThumbWidth = 320
)

var eagerAsyncFalse = false

// ThumbnailURL returns a delivery URL resized to width for an uploaded public ID.
func ThumbnailURL(cloudName, publicID string, width int) string {
	if width <= 0 {
		width = ThumbWidth
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/q_auto,f_auto,w_%d,c_limit/%s",
		cloudName, width, publicID)
}

type clientImpl struct {
	cloudName string
	uploader  *uploader.API
}

func (c *clientImpl) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (Image, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:     folder,
		PublicID:   publicID,
		Eager:      imageEager,
		EagerAsync: &eagerAsyncFalse,
	})
	if err != nil {
		return Image{}, err
	}
	if result.Error.Message != "" {
		return Image{}, fmt.Errorf("cloudinary: %s", result.Error.Message)
	}
	img := Image{URL: result.SecureURL, PublicID: result.PublicID}
	if len(result.Eager) > 0 {
		img.URL = result.Eager[0].SecureURL
	}
	img.ThumbnailURL = ThumbnailURL(c.cloudName, result.PublicID, ThumbWidth)
	return img, nil
}

func (c *clientImpl) Delete(ctx context.Context, publicID string) error {
	res, err := c.uploader.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary: %s", res.Error.Message)
	}
	return nil
}

// NewClientFromParams builds a Client from Cloudinary cloud name, API key, and secret.
func NewClientFromParams(cloudName, apiKey, apiSecret string) (Client, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &clientImpl{
		cloudName: cloudName,
		uploader:  up,
	}, nil
}
