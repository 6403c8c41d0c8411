package inquiries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"artcatalog/internal/domain/catalog"
	"artcatalog/internal/domain/inquiries"
	"artcatalog/internal/domain/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCatalog(t *testing.T, db *gorm.DB) (catalog.Artist, catalog.Artwork) {
	t.Helper()
	artist := catalog.Artist{Name: "Ana", PrimaryCategory: catalog.CategoryPainting}
	require.NoError(t, catalog.CreateArtist(db, &artist))
	artwork := catalog.Artwork{Title: "Silent Horizon", Category: catalog.CategoryPainting, ArtistID: artist.ID}
	require.NoError(t, catalog.CreateArtwork(db, &artwork))
	return artist, artwork
}

func seedInquiry(t *testing.T, db *gorm.DB, inquiry inquiries.Inquiry) inquiries.Inquiry {
	t.Helper()
	require.NoError(t, inquiries.Create(db, &inquiry))
	return inquiry
}

func TestCreateInquiry(t *testing.T) {
	t.Run("requires a reference", func(t *testing.T) {
		db := testdb.Open(t)
		err := inquiries.Create(db, &inquiries.Inquiry{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Message: "Is this available?",
		})
		assert.ErrorIs(t, err, inquiries.ErrMissingReference)
	})

	t.Run("artwork reference alone is enough", func(t *testing.T) {
		db := testdb.Open(t)
		_, artwork := seedCatalog(t, db)

		inquiry := inquiries.Inquiry{
			Name:      "Visitor",
			Email:     "visitor@example.com",
			Message:   "Is this available?",
			ArtworkID: &artwork.ID,
		}
		require.NoError(t, inquiries.Create(db, &inquiry))

		assert.Equal(t, inquiries.StatusNew, inquiry.Status)
		require.NotNil(t, inquiry.Artwork)
		assert.Equal(t, "Silent Horizon", inquiry.Artwork.Title)
		assert.Nil(t, inquiry.Artist)
	})

	t.Run("both references are allowed", func(t *testing.T) {
		db := testdb.Open(t)
		artist, artwork := seedCatalog(t, db)

		inquiry := seedInquiry(t, db, inquiries.Inquiry{
			Name:      "Visitor",
			Email:     "visitor@example.com",
			Message:   "Tell me more about Ana's work.",
			ArtistID:  &artist.ID,
			ArtworkID: &artwork.ID,
		})
		require.NotNil(t, inquiry.Artist)
		assert.Equal(t, "Ana", inquiry.Artist.Name)
		require.NotNil(t, inquiry.Artwork)
	})
}

func TestGetInquiryByID(t *testing.T) {
	db := testdb.Open(t)
	artist, _ := seedCatalog(t, db)
	created := seedInquiry(t, db, inquiries.Inquiry{
		Name:     "Visitor",
		Email:    "visitor@example.com",
		Message:  "Commission request.",
		ArtistID: &artist.ID,
	})

	got, err := inquiries.GetByID(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Commission request.", got.Message)
	require.NotNil(t, got.Artist)
	assert.Equal(t, "Ana", got.Artist.Name)

	_, err = inquiries.GetByID(db, 9999)
	assert.ErrorIs(t, err, inquiries.ErrNotFound)
}

func TestListInquiries(t *testing.T) {
	db := testdb.Open(t)
	artist, artwork := seedCatalog(t, db)

	seedInquiry(t, db, inquiries.Inquiry{
		Name: "Alice", Email: "alice@example.com", Message: "Price of the horizon piece?",
		ArtworkID: &artwork.ID,
	})
	seedInquiry(t, db, inquiries.Inquiry{
		Name: "Bob", Email: "bob@example.com", Message: "Studio visit?",
		ArtistID: &artist.ID, Status: inquiries.StatusRead,
	})
	seedInquiry(t, db, inquiries.Inquiry{
		Name: "Carol", Email: "carol@example.com", Message: "Old thread.",
		ArtistID: &artist.ID, Status: inquiries.StatusArchived,
	})

	t.Run("status filter", func(t *testing.T) {
		items, total, err := inquiries.List(db, inquiries.ListQuery{Status: inquiries.StatusRead})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Bob", items[0].Name)
	})

	t.Run("search matches sender fields", func(t *testing.T) {
		_, total, err := inquiries.List(db, inquiries.ListQuery{Search: "ALICE"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})

	t.Run("search matches the related artwork title", func(t *testing.T) {
		items, total, err := inquiries.List(db, inquiries.ListQuery{Search: "silent horizon"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Alice", items[0].Name)
	})

	t.Run("search matches the related artist name", func(t *testing.T) {
		_, total, err := inquiries.List(db, inquiries.ListQuery{Search: "ana"})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("wildcards in the term match literally", func(t *testing.T) {
		_, total, err := inquiries.List(db, inquiries.ListQuery{Search: "_"})
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
	})

	t.Run("relations carry only summary fields", func(t *testing.T) {
		items, _, err := inquiries.List(db, inquiries.ListQuery{Status: inquiries.StatusRead})
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].Artist)
		assert.Equal(t, "Ana", items[0].Artist.Name)
	})
}

func TestListInquiriesPagination(t *testing.T) {
	db := testdb.Open(t)
	artist, _ := seedCatalog(t, db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		seedInquiry(t, db, inquiries.Inquiry{
			Name:      fmt.Sprintf("Visitor %d", i),
			Email:     fmt.Sprintf("v%d@example.com", i),
			Message:   "Hello",
			ArtistID:  &artist.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	var seen int
	for page := 1; page <= 3; page++ {
		items, total, err := inquiries.List(db, inquiries.ListQuery{Page: page, PageSize: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		seen += len(items)
	}
	assert.Equal(t, 5, seen)

	items, _, err := inquiries.List(db, inquiries.ListQuery{Page: 1, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Visitor 4", items[0].Name, "newest inquiry comes first")
}

func TestInquirySurvivesCatalogDeletion(t *testing.T) {
	db := testdb.Open(t)
	artist, artwork := seedCatalog(t, db)
	inquiry := seedInquiry(t, db, inquiries.Inquiry{
		Name: "Visitor", Email: "visitor@example.com", Message: "Still available?",
		ArtistID: &artist.ID, ArtworkID: &artwork.ID,
	})

	require.NoError(t, catalog.DeleteArtwork(context.Background(), db, nil, artwork.ID))

	got, err := inquiries.GetByID(db, inquiry.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ArtworkID, "the artwork reference is nulled, not the inquiry deleted")
	require.NotNil(t, got.ArtistID)

	require.NoError(t, catalog.DeleteArtist(context.Background(), db, nil, artist.ID))

	got, err = inquiries.GetByID(db, inquiry.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ArtistID)
	assert.Equal(t, "Still available?", got.Message)
}

func TestUpdateInquiryStatus(t *testing.T) {
	db := testdb.Open(t)
	artist, _ := seedCatalog(t, db)
	inquiry := seedInquiry(t, db, inquiries.Inquiry{
		Name: "Visitor", Email: "visitor@example.com", Message: "Hello",
		ArtistID: &artist.ID,
	})

	// any transition is allowed, including moving back out of ARCHIVED
	for _, status := range []inquiries.InquiryStatus{
		inquiries.StatusRead,
		inquiries.StatusArchived,
		inquiries.StatusNew,
	} {
		updated, err := inquiries.UpdateStatus(db, inquiry.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}

	_, err := inquiries.UpdateStatus(db, 9999, inquiries.StatusRead)
	assert.ErrorIs(t, err, inquiries.ErrNotFound)
}

func TestGetStats(t *testing.T) {
	db := testdb.Open(t)
	artist, _ := seedCatalog(t, db)

	empty, err := inquiries.GetStats(db)
	require.NoError(t, err)
	assert.Equal(t, inquiries.Stats{}, empty)

	for _, status := range []inquiries.InquiryStatus{
		inquiries.StatusNew,
		inquiries.StatusNew,
		inquiries.StatusRead,
	} {
		seedInquiry(t, db, inquiries.Inquiry{
			Name: "Visitor", Email: "visitor@example.com", Message: "Hello",
			ArtistID: &artist.ID, Status: status,
		})
	}

	stats, err := inquiries.GetStats(db)
	require.NoError(t, err)
	assert.Equal(t, inquiries.Stats{All: 3, New: 2, Read: 1, Archived: 0}, stats)
}
