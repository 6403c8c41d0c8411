package inquiries

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 50
)

var (
	ErrNotFound = errors.New("inquiry not found")

	// ErrMissingReference: an inquiry must regard an artist or an artwork.
	ErrMissingReference = errors.New("either artistId or artworkId is required")
)

type ListQuery struct {
	Page     int
	PageSize int
	Status   InquiryStatus
	Search   string
}

func (q ListQuery) Normalized() ListQuery {
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

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeNeedle lowers the term and escapes LIKE wildcards so user input always
// matches literally. Queries using it must carry ESCAPE '\'.
func likeNeedle(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

type Stats struct {
	All      int64 `json:"all"`
	New      int64 `json:"new"`
	Read     int64 `json:"read"`
	Archived int64 `json:"archived"`
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Artist", func(tx *gorm.DB) *gorm.DB { return tx.Select("id", "name") }).
		Preload("Artwork", func(tx *gorm.DB) *gorm.DB { return tx.Select("id", "title") })
}

func listScope(db *gorm.DB, q ListQuery) *gorm.DB {
	tx := db.Model(&Inquiry{})
	if q.Status != "" {
		tx = tx.Where("inquiries.status = ?", q.Status)
	}
	if q.Search != "" {
		needle := likeNeedle(q.Search)
		tx = tx.
			Joins("LEFT JOIN artists ON artists.id = inquiries.artist_id").
			Joins("LEFT JOIN artworks ON artworks.id = inquiries.artwork_id").
			Where(
				`LOWER(inquiries.name) LIKE ? ESCAPE '\' OR LOWER(inquiries.email) LIKE ? ESCAPE '\'`+
					` OR LOWER(inquiries.message) LIKE ? ESCAPE '\'`+
					` OR LOWER(artists.name) LIKE ? ESCAPE '\' OR LOWER(artworks.title) LIKE ? ESCAPE '\'`,
				needle, needle, needle, needle, needle,
			)
	}
	return tx
}

// Create stores a new inquiry with status NEW. Field-level validation lives in
// the request DTO; the cross-field invariant is enforced here.
func Create(db *gorm.DB, inquiry *Inquiry) error {
	if inquiry.ArtistID == nil && inquiry.ArtworkID == nil {
		return ErrMissingReference
	}
	if inquiry.Status == "" {
		inquiry.Status = StatusNew
	}
	if err := db.Create(inquiry).Error; err != nil {
		return err
	}
	return withRelations(db).First(inquiry, inquiry.ID).Error
}

func GetByID(db *gorm.DB, id uint) (*Inquiry, error) {
	var inquiry Inquiry
	if err := withRelations(db).First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inquiry, nil
}

func List(db *gorm.DB, q ListQuery) ([]Inquiry, int64, error) {
	q = q.Normalized()

	var total int64
	if err := listScope(db, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Inquiry
	err := withRelations(listScope(db, q)).
		Order("inquiries.created_at DESC").
		Limit(q.PageSize).
		Offset((q.Page - 1) * q.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// UpdateStatus overwrites the status unconditionally; any enum value may
// follow any other.
func UpdateStatus(db *gorm.DB, id uint, status InquiryStatus) (*Inquiry, error) {
	var existing Inquiry
	if err := db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := db.Model(&existing).Update("status", status).Error; err != nil {
		return nil, err
	}

	return GetByID(db, id)
}

// GetStats counts per status. The counts are independent point-in-time reads,
// not a single transactional snapshot.
func GetStats(db *gorm.DB) (Stats, error) {
	var stats Stats

	if err := db.Model(&Inquiry{}).Count(&stats.All).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&Inquiry{}).Where("status = ?", StatusNew).Count(&stats.New).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&Inquiry{}).Where("status = ?", StatusRead).Count(&stats.Read).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&Inquiry{}).Where("status = ?", StatusArchived).Count(&stats.Archived).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
