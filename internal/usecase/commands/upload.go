package commands

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/pkg/config"

	"github.com/google/uuid"
)

type ObjectStore interface {
	Put(ctx context.Context, bucket, key, contentType string, body io.Reader, size int64) error
	SignedURL(ctx context.Context, ref menu.ImageRef) (string, error)
}

type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadResult struct {
	Bucket string
	Path   string
	URL    *string
}

type UploadCommands interface {
	UploadMenuImage(ctx context.Context, vendorID uuid.UUID, file UploadFile) (*UploadResult, error)
	UploadVendorImage(ctx context.Context, vendorID uuid.UUID, file UploadFile) (*UploadResult, error)
}

type uploadCommandsImpl struct {
	store        ObjectStore
	menuBucket   string
	vendorBucket string
	maxBytes     int64
}

func NewUploadCommands(store ObjectStore, cfg config.Config) UploadCommands {
	return &uploadCommandsImpl{
		store:        store,
		menuBucket:   cfg.Storage.MenuBucket,
		vendorBucket: cfg.Storage.VendorBucket,
		maxBytes:     cfg.Storage.MaxUploadBytes,
	}
}

func (u *uploadCommandsImpl) UploadMenuImage(ctx context.Context, vendorID uuid.UUID, file UploadFile) (*UploadResult, error) {
	return u.upload(ctx, u.menuBucket, vendorID, file)
}

func (u *uploadCommandsImpl) UploadVendorImage(ctx context.Context, vendorID uuid.UUID, file UploadFile) (*UploadResult, error) {
	return u.upload(ctx, u.vendorBucket, vendorID, file)
}

func (u *uploadCommandsImpl) upload(ctx context.Context, bucket string, vendorID uuid.UUID, file UploadFile) (*UploadResult, error) {
	if !strings.HasPrefix(strings.ToLower(file.ContentType), "image/") {
		return nil, ErrUnsupportedImage
	}
	if file.Size <= 0 {
		return nil, ErrEmptyFile
	}
	if u.maxBytes > 0 && file.Size > u.maxBytes {
		return nil, ErrFileTooLarge
	}

	ref := menu.ImageRef{Bucket: bucket, Path: objectKey(vendorID, file.Filename)}
	if err := u.store.Put(ctx, ref.Bucket, ref.Path, file.ContentType, file.Body, file.Size); err != nil {
		return nil, err
	}

	result := &UploadResult{Bucket: ref.Bucket, Path: ref.Path}
	signed, err := u.store.SignedURL(ctx, ref)
	if err != nil {
		slog.Warn("Failed to sign uploaded image", "bucket", ref.Bucket, "path", ref.Path, "error", err.Error())
		return result, nil
	}
	result.URL = &signed
	return result, nil
}

// objectKey is {vendor_id}/{uuid}{ext}, keeping the client's extension.
func objectKey(vendorID uuid.UUID, filename string) string {
	return vendorID.String() + "/" + uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}
