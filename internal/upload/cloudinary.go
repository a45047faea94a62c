// Package upload forwards admin image uploads to Cloudinary with an unsigned preset.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MaxImageSize is the largest file accepted for upload
const MaxImageSize = 5 * 1024 * 1024

var (
	// ErrNotImage is returned when the file's content type is not image/*
	ErrNotImage = errors.New("Please upload an image file")
	// ErrTooLarge is returned for files above MaxImageSize
	ErrTooLarge = errors.New("Image size should be less than 5MB")
	// ErrNotConfigured is returned when no cloud name is set
	ErrNotConfigured = errors.New("image uploads are not configured")
)

// Validate applies the client-side checks performed before any upload
func Validate(contentType string, size int64) error {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return ErrNotImage
	}
	if size > MaxImageSize {
		return ErrTooLarge
	}
	return nil
}

// Cloudinary uploads images with an unsigned preset
type Cloudinary struct {
	cld    *cloudinary.Cloudinary // nil when no cloud name is configured
	preset string
}

// NewCloudinary builds an uploader for cloudName. An empty cloudName yields an
// uploader that always fails with ErrNotConfigured. baseURL overrides the API host.
func NewCloudinary(cloudName, preset, baseURL string) (*Cloudinary, error) {
	if cloudName == "" {
		return &Cloudinary{preset: preset}, nil
	}
	cld, err := cloudinary.NewFromParams(cloudName, "", "") // unsigned uploads need no key
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	if baseURL != "" {
		cld.Upload.Config.API.UploadPrefix = strings.TrimRight(baseURL, "/")
	}
	return &Cloudinary{cld: cld, preset: preset}, nil
}

// Upload sends the file and returns the persisted asset URL. folder may be empty.
func (c *Cloudinary) Upload(ctx context.Context, filename string, file io.Reader, folder string) (string, error) {
	if c.cld == nil {
		return "", ErrNotConfigured
	}
	res, err := c.cld.Upload.UnsignedUpload(ctx, file, c.preset, uploader.UploadParams{
		Folder:           folder,
		ResourceType:     "image",
		FilenameOverride: filename,
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", errors.New("No secure URL returned")
	}
	return res.SecureURL, nil
}
