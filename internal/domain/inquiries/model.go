package inquiries

import (
	"time"

	"artcatalog/internal/domain/catalog"
)

type InquiryStatus string

const (
	StatusNew      InquiryStatus = "NEW"
	StatusRead     InquiryStatus = "READ"
	StatusArchived InquiryStatus = "ARCHIVED"
)

// Inquiry is a visitor message about an artist or an artwork. At least one of
// the two references must be present; both at once are allowed.
type Inquiry struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Message string `gorm:"not null" json:"message"`

	Status InquiryStatus `gorm:"type:text;not null;default:'NEW';index" json:"status"`

	// Deleting the referenced artist or artwork keeps the inquiry and nulls
	// the reference, so the visitor's message is never lost with the record.
	ArtistID *uint           `gorm:"index" json:"artistId,omitempty"`
	Artist   *catalog.Artist `gorm:"foreignKey:ArtistID;constraint:OnDelete:SET NULL" json:"artist,omitempty"`

	ArtworkID *uint            `gorm:"index" json:"artworkId,omitempty"`
	Artwork   *catalog.Artwork `gorm:"foreignKey:ArtworkID;constraint:OnDelete:SET NULL" json:"artwork,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
