package catalog_test

import (
	"context"
	"testing"
	"time"

	"artcatalog/internal/domain/catalog"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// fakeDeleter records remote delete calls so tests can count cleanups.
type fakeDeleter struct {
	deleted []string
	err     error
}

func (f *fakeDeleter) Delete(_ context.Context, publicID string) error {
	f.deleted = append(f.deleted, publicID)
	return f.err
}

func seedArtist(t *testing.T, db *gorm.DB, artist catalog.Artist) catalog.Artist {
	t.Helper()
	require.NoError(t, catalog.CreateArtist(db, &artist))
	return artist
}

func seedArtwork(t *testing.T, db *gorm.DB, artwork catalog.Artwork) catalog.Artwork {
	t.Helper()
	require.NoError(t, catalog.CreateArtwork(db, &artwork))
	return artwork
}

// stamp gives each seeded row a distinct creation time so newest-first
// ordering is deterministic.
func stamp(n int) time.Time {
	return time.Now().Add(-time.Hour).Add(time.Duration(n) * time.Minute)
}
