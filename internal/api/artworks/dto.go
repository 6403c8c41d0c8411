package artworks

import "artcatalog/internal/domain/catalog"

type CreateArtworkRequest struct {
	Title         string                       `json:"title" binding:"required"`
	Description   *string                      `json:"description"`
	Year          *int                         `json:"year"`
	ImageURL      *string                      `json:"imageUrl" binding:"omitempty,url"`
	ImagePublicID *string                      `json:"imagePublicId"`
	Technique     *catalog.ArtworkTechnique    `json:"technique" binding:"omitempty,oneof=OIL ACRYLIC WATERCOLOR INK DIGITAL_PAINTING"`
	Style         *catalog.ArtworkStyle        `json:"style" binding:"omitempty,oneof=ABSTRACT CONTEMPORARY MINIMALISM REALISM IMPRESSIONISM"`
	Motive        *catalog.ArtworkMotive       `json:"motive" binding:"omitempty,oneof=LANDSCAPE CITYSCAPE PORTRAIT GEOMETRIC NATURE"`
	Orientation   *catalog.ArtworkOrientation  `json:"orientation" binding:"omitempty,oneof=PORTRAIT LANDSCAPE SQUARE"`
	Size          *catalog.ArtworkStandardSize `json:"size" binding:"omitempty,oneof=A3_29_7x42 A2_42x59_4 SIZE_50x70 SIZE_70x100"`
	Framed        bool                         `json:"framed"`
	Category      catalog.ArtworkCategory      `json:"category" binding:"required,oneof=PAINTING SCULPTURE PHOTOGRAPHY DIGITAL_ART OTHER"`
	ArtistID      uint                         `json:"artistId" binding:"required"`
}

type UpdateArtworkRequest struct {
	Title         *string                      `json:"title"`
	Description   *string                      `json:"description"`
	Year          *int                         `json:"year"`
	ImageURL      *string                      `json:"imageUrl"`
	ImagePublicID *string                      `json:"imagePublicId"`
	Technique     *catalog.ArtworkTechnique    `json:"technique" binding:"omitempty,oneof=OIL ACRYLIC WATERCOLOR INK DIGITAL_PAINTING"`
	Style         *catalog.ArtworkStyle        `json:"style" binding:"omitempty,oneof=ABSTRACT CONTEMPORARY MINIMALISM REALISM IMPRESSIONISM"`
	Motive        *catalog.ArtworkMotive       `json:"motive" binding:"omitempty,oneof=LANDSCAPE CITYSCAPE PORTRAIT GEOMETRIC NATURE"`
	Orientation   *catalog.ArtworkOrientation  `json:"orientation" binding:"omitempty,oneof=PORTRAIT LANDSCAPE SQUARE"`
	Size          *catalog.ArtworkStandardSize `json:"size" binding:"omitempty,oneof=A3_29_7x42 A2_42x59_4 SIZE_50x70 SIZE_70x100"`
	Framed        *bool                        `json:"framed"`
	Category      *catalog.ArtworkCategory     `json:"category" binding:"omitempty,oneof=PAINTING SCULPTURE PHOTOGRAPHY DIGITAL_ART OTHER"`
	ArtistID      *uint                        `json:"artistId"`
}

func (r UpdateArtworkRequest) toPatch() catalog.ArtworkPatch {
	return catalog.ArtworkPatch{
		Title:         r.Title,
		Description:   r.Description,
		Year:          r.Year,
		ImageURL:      r.ImageURL,
		ImagePublicID: r.ImagePublicID,
		Technique:     r.Technique,
		Style:         r.Style,
		Motive:        r.Motive,
		Orientation:   r.Orientation,
		Size:          r.Size,
		Framed:        r.Framed,
		Category:      r.Category,
		ArtistID:      r.ArtistID,
	}
}
