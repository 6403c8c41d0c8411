package catalog

import (
	"context"

	"gorm.io/gorm"
)

type ArtworkListQuery struct {
	Page     int
	PageSize int
	Search   string
	ArtistID uint
	Category ArtworkCategory
}

func (q ArtworkListQuery) Normalized() ArtworkListQuery {
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

type ArtworkPatch struct {
	Title         *string
	Description   *string
	Year          *int
	ImageURL      *string
	ImagePublicID *string
	Technique     *ArtworkTechnique
	Style         *ArtworkStyle
	Motive        *ArtworkMotive
	Orientation   *ArtworkOrientation
	Size          *ArtworkStandardSize
	Framed        *bool
	Category      *ArtworkCategory
	ArtistID      *uint
}

func (p ArtworkPatch) changes() map[string]interface{} {
	m := map[string]interface{}{}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Description != nil {
		m["description"] = *p.Description
	}
	if p.Year != nil {
		m["year"] = *p.Year
	}
	if p.ImageURL != nil {
		m["image_url"] = *p.ImageURL
	}
	if p.ImagePublicID != nil {
		m["image_public_id"] = *p.ImagePublicID
	}
	if p.Technique != nil {
		m["technique"] = *p.Technique
	}
	if p.Style != nil {
		m["style"] = *p.Style
	}
	if p.Motive != nil {
		m["motive"] = *p.Motive
	}
	if p.Orientation != nil {
		m["orientation"] = *p.Orientation
	}
	if p.Size != nil {
		m["size"] = *p.Size
	}
	if p.Framed != nil {
		m["framed"] = *p.Framed
	}
	if p.Category != nil {
		m["category"] = *p.Category
	}
	if p.ArtistID != nil {
		m["artist_id"] = *p.ArtistID
	}
	return m
}

// The search term matches the artwork title or the related artist's name,
// hence the join.
func artworkListScope(db *gorm.DB, q ArtworkListQuery) *gorm.DB {
	tx := db.Model(&Artwork{})
	if q.Search != "" {
		needle := likeNeedle(q.Search)
		tx = tx.
			Joins("LEFT JOIN artists ON artists.id = artworks.artist_id").
			Where(`LOWER(artworks.title) LIKE ? ESCAPE '\' OR LOWER(artists.name) LIKE ? ESCAPE '\'`, needle, needle)
	}
	if q.ArtistID != 0 {
		tx = tx.Where("artworks.artist_id = ?", q.ArtistID)
	}
	if q.Category != "" {
		tx = tx.Where("artworks.category = ?", q.Category)
	}
	return tx
}

func GetArtworkByID(db *gorm.DB, id uint) (*Artwork, error) {
	var artwork Artwork
	if err := db.Preload("Artist").First(&artwork, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &artwork, nil
}

func ListArtworks(db *gorm.DB, q ArtworkListQuery) ([]Artwork, int64, error) {
	q = q.Normalized()

	var total int64
	if err := artworkListScope(db, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Artwork
	err := artworkListScope(db, q).
		Preload("Artist").
		Order("artworks.created_at DESC").
		Limit(q.PageSize).
		Offset((q.Page - 1) * q.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// CreateArtwork connects the new artwork to an existing artist. The artist is
// checked explicitly so the caller gets ErrArtistNotFound instead of a
// driver-specific foreign key violation.
func CreateArtwork(db *gorm.DB, artwork *Artwork) error {
	var count int64
	if err := db.Model(&Artist{}).Where("id = ?", artwork.ArtistID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrArtistNotFound
	}
	return db.Create(artwork).Error
}

// UpdateArtwork applies a partial update with the same old-image cleanup rule
// as artist avatars: the prior remote asset is deleted only when the new
// public id differs from the stored one.
func UpdateArtwork(ctx context.Context, db *gorm.DB, images RemoteImageDeleter, id uint, patch ArtworkPatch) (*Artwork, error) {
	var existing Artwork
	if err := db.First(&existing, id).Error; err != nil {
		return nil, notFound(err)
	}

	if patch.ArtistID != nil && *patch.ArtistID != existing.ArtistID {
		var count int64
		if err := db.Model(&Artist{}).Where("id = ?", *patch.ArtistID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrArtistNotFound
		}
	}

	if patch.ImagePublicID != nil &&
		existing.ImagePublicID != nil && *existing.ImagePublicID != "" &&
		*patch.ImagePublicID != *existing.ImagePublicID {
		cleanupRemoteImage(ctx, images, *existing.ImagePublicID)
	}

	if updates := patch.changes(); len(updates) > 0 {
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	var updated Artwork
	if err := db.Preload("Artist").First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteArtwork(ctx context.Context, db *gorm.DB, images RemoteImageDeleter, id uint) error {
	var existing Artwork
	if err := db.First(&existing, id).Error; err != nil {
		return notFound(err)
	}

	if existing.ImagePublicID != nil && *existing.ImagePublicID != "" {
		cleanupRemoteImage(ctx, images, *existing.ImagePublicID)
	}

	return db.Delete(&existing).Error
}
