package catalog

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type ArtistListQuery struct {
	Page            int
	PageSize        int
	Search          string
	PrimaryCategory ArtworkCategory
}

func (q ArtistListQuery) Normalized() ArtistListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	return q
}

// ArtistPatch carries a partial update: a nil field means "do not change",
// a pointer to the zero value means "clear this field".
type ArtistPatch struct {
	Name            *string
	Bio             *string
	Country         *string
	BirthYear       *int
	DeathYear       *int
	AvatarURL       *string
	AvatarPublicID  *string
	PrimaryCategory *ArtworkCategory
}

func (p ArtistPatch) changes() map[string]interface{} {
	m := map[string]interface{}{}
	if p.Name != nil {
		m["name"] = *p.Name
	}
	if p.Bio != nil {
		m["bio"] = *p.Bio
	}
	if p.Country != nil {
		m["country"] = *p.Country
	}
	if p.BirthYear != nil {
		m["birth_year"] = *p.BirthYear
	}
	if p.DeathYear != nil {
		m["death_year"] = *p.DeathYear
	}
	if p.AvatarURL != nil {
		m["avatar_url"] = *p.AvatarURL
	}
	if p.AvatarPublicID != nil {
		m["avatar_public_id"] = *p.AvatarPublicID
	}
	if p.PrimaryCategory != nil {
		m["primary_category"] = *p.PrimaryCategory
	}
	return m
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeNeedle lowers the term and escapes LIKE wildcards so user input always
// matches literally. Queries using it must carry ESCAPE '\'.
func likeNeedle(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

func artistListScope(db *gorm.DB, q ArtistListQuery) *gorm.DB {
	tx := db.Model(&Artist{})
	if q.Search != "" {
		needle := likeNeedle(q.Search)
		tx = tx.Where(`LOWER(artists.name) LIKE ? ESCAPE '\' OR LOWER(artists.country) LIKE ? ESCAPE '\'`, needle, needle)
	}
	if q.PrimaryCategory != "" {
		tx = tx.Where("artists.primary_category = ?", q.PrimaryCategory)
	}
	return tx
}

func GetArtistByID(db *gorm.DB, id uint) (*Artist, error) {
	var artist Artist
	if err := db.Preload("Artworks").First(&artist, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &artist, nil
}

// ListArtists returns one page ordered newest-first plus the total count of
// matching rows. Items carry their artworks collection.
func ListArtists(db *gorm.DB, q ArtistListQuery) ([]Artist, int64, error) {
	q = q.Normalized()

	var total int64
	if err := artistListScope(db, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Artist
	err := artistListScope(db, q).
		Preload("Artworks").
		Order("artists.created_at DESC").
		Limit(q.PageSize).
		Offset((q.Page - 1) * q.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func CreateArtist(db *gorm.DB, artist *Artist) error {
	return db.Create(artist).Error
}

// UpdateArtist applies a partial update. When the patch replaces the avatar
// public id with a different one, the old remote asset is deleted best-effort
// before the row is updated.
func UpdateArtist(ctx context.Context, db *gorm.DB, images RemoteImageDeleter, id uint, patch ArtistPatch) (*Artist, error) {
	var existing Artist
	if err := db.First(&existing, id).Error; err != nil {
		return nil, notFound(err)
	}

	if patch.AvatarPublicID != nil &&
		existing.AvatarPublicID != nil && *existing.AvatarPublicID != "" &&
		*patch.AvatarPublicID != *existing.AvatarPublicID {
		cleanupRemoteImage(ctx, images, *existing.AvatarPublicID)
	}

	if updates := patch.changes(); len(updates) > 0 {
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	var updated Artist
	if err := db.First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteArtist removes the artist and its artworks. The stored remote avatar
// and every owned artwork's remote image are deleted best-effort first, so
// the cascade leaves no orphaned assets behind.
func DeleteArtist(ctx context.Context, db *gorm.DB, images RemoteImageDeleter, id uint) error {
	var existing Artist
	if err := db.Preload("Artworks").First(&existing, id).Error; err != nil {
		return notFound(err)
	}

	if existing.AvatarPublicID != nil && *existing.AvatarPublicID != "" {
		cleanupRemoteImage(ctx, images, *existing.AvatarPublicID)
	}
	for _, artwork := range existing.Artworks {
		if artwork.ImagePublicID != nil && *artwork.ImagePublicID != "" {
			cleanupRemoteImage(ctx, images, *artwork.ImagePublicID)
		}
	}

	return db.Select("Artworks").Delete(&existing).Error
}
