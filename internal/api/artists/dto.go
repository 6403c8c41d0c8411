package artists

import "artcatalog/internal/domain/catalog"

type CreateArtistRequest struct {
	Name            string                  `json:"name" binding:"required"`
	Bio             *string                 `json:"bio"`
	Country         *string                 `json:"country"`
	BirthYear       *int                    `json:"birthYear"`
	DeathYear       *int                    `json:"deathYear"`
	AvatarURL       *string                 `json:"avatarUrl" binding:"omitempty,url"`
	AvatarPublicID  *string                 `json:"avatarPublicId"`
	PrimaryCategory catalog.ArtworkCategory `json:"primaryCategory" binding:"required,oneof=PAINTING SCULPTURE PHOTOGRAPHY DIGITAL_ART OTHER"`
}

// UpdateArtistRequest is all-optional: an absent field is left unchanged, a
// field set to the empty value clears the column.
type UpdateArtistRequest struct {
	Name            *string                  `json:"name"`
	Bio             *string                  `json:"bio"`
	Country         *string                  `json:"country"`
	BirthYear       *int                     `json:"birthYear"`
	DeathYear       *int                     `json:"deathYear"`
	AvatarURL       *string                  `json:"avatarUrl"`
	AvatarPublicID  *string                  `json:"avatarPublicId"`
	PrimaryCategory *catalog.ArtworkCategory `json:"primaryCategory" binding:"omitempty,oneof=PAINTING SCULPTURE PHOTOGRAPHY DIGITAL_ART OTHER"`
}

func (r UpdateArtistRequest) toPatch() catalog.ArtistPatch {
	return catalog.ArtistPatch{
		Name:            r.Name,
		Bio:             r.Bio,
		Country:         r.Country,
		BirthYear:       r.BirthYear,
		DeathYear:       r.DeathYear,
		AvatarURL:       r.AvatarURL,
		AvatarPublicID:  r.AvatarPublicID,
		PrimaryCategory: r.PrimaryCategory,
	}
}
