package catalog

import "time"

type Artist struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	Bio       *string `json:"bio,omitempty"`
	Country   *string `json:"country,omitempty"`
	BirthYear *int    `json:"birthYear,omitempty"`
	DeathYear *int    `json:"deathYear,omitempty"`

	// AvatarPublicID references the remote Cloudinary asset behind AvatarURL.
	// The two travel together; replacing or deleting the artist must delete
	// the remote asset so it is never orphaned.
	AvatarURL      *string `json:"avatarUrl,omitempty"`
	AvatarPublicID *string `json:"avatarPublicId,omitempty"`

	PrimaryCategory ArtworkCategory `gorm:"type:text;not null;index" json:"primaryCategory"`

	Artworks []Artwork `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"artworks,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Artwork struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"not null" json:"title"`

	Description *string `json:"description,omitempty"`
	Year        *int    `json:"year,omitempty"`

	// Same orphan-prevention rule as artist avatars, keyed on ImagePublicID.
	ImageURL      *string `json:"imageUrl,omitempty"`
	ImagePublicID *string `json:"imagePublicId,omitempty"`

	Technique   *ArtworkTechnique    `gorm:"type:text" json:"technique,omitempty"`
	Style       *ArtworkStyle        `gorm:"type:text" json:"style,omitempty"`
	Motive      *ArtworkMotive       `gorm:"type:text" json:"motive,omitempty"`
	Orientation *ArtworkOrientation  `gorm:"type:text" json:"orientation,omitempty"`
	Size        *ArtworkStandardSize `gorm:"type:text" json:"size,omitempty"`

	Framed   bool            `gorm:"not null;default:false" json:"framed"`
	Category ArtworkCategory `gorm:"type:text;not null;index" json:"category"`

	ArtistID uint    `gorm:"not null;index" json:"artistId"`
	Artist   *Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
