package queries

import (
	"context"
	"log/slog"

	"tiffintime-api/internal/domain/menu"
	"tiffintime-api/internal/pkg/metrics"
)

// ImageSigner turns a stored object reference into a time-limited URL.
type ImageSigner interface {
	SignedURL(ctx context.Context, ref menu.ImageRef) (string, error)
}

// signImage never fails the read: a missing or unsignable image becomes nil.
func signImage(ctx context.Context, signer ImageSigner, ref *menu.ImageRef, owner string) *string {
	if ref == nil || signer == nil {
		return nil
	}
	url, err := signer.SignedURL(ctx, *ref)
	if err != nil {
		slog.Warn("failed to sign image url", "owner", owner, "bucket", ref.Bucket, "path", ref.Path, "error", err.Error())
		metrics.ImageSignFailed(ref.Bucket)
		return nil
	}
	return &url
}
