package catalog

import (
	"context"
	"errors"

	"artcatalog/internal/logger"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the requested artist or artwork does not exist.
var ErrNotFound = errors.New("record not found")

// ErrArtistNotFound signals a broken artwork->artist reference on create.
var ErrArtistNotFound = errors.New("artist not found")

// RemoteImageDeleter removes an asset from the remote media host by public id.
// media.Client satisfies it; tests substitute a fake.
type RemoteImageDeleter interface {
	Delete(ctx context.Context, publicID string) error
}

// cleanupRemoteImage is best-effort: a failed remote delete is logged and
// swallowed so it never blocks or rolls back the primary database mutation.
func cleanupRemoteImage(ctx context.Context, images RemoteImageDeleter, publicID string) {
	if images == nil || publicID == "" {
		return
	}
	if err := images.Delete(ctx, publicID); err != nil {
		logger.L.Warnw("remote image cleanup failed", "publicId", publicID, "error", err)
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
