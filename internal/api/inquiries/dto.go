package inquiries

import "artcatalog/internal/domain/inquiries"

type CreateInquiryRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=200"`
	Message string `json:"message" binding:"required,min=5,max=5000"`

	ArtistID  *uint `json:"artistId"`
	ArtworkID *uint `json:"artworkId"`
}

type UpdateInquiryRequest struct {
	Status inquiries.InquiryStatus `json:"status" binding:"required,oneof=NEW READ ARCHIVED"`
}

// RelatedArtist / RelatedArtwork trim the preloaded relations down to the
// identity plus display name the inquiry console shows.
type RelatedArtist struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type RelatedArtwork struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type InquiryResponse struct {
	ID        uint                    `json:"id"`
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Message   string                  `json:"message"`
	Status    inquiries.InquiryStatus `json:"status"`
	ArtistID  *uint                   `json:"artistId,omitempty"`
	ArtworkID *uint                   `json:"artworkId,omitempty"`
	Artist    *RelatedArtist          `json:"artist,omitempty"`
	Artwork   *RelatedArtwork         `json:"artwork,omitempty"`
	CreatedAt string                  `json:"createdAt"`
}

func toResponse(i inquiries.Inquiry) InquiryResponse {
	resp := InquiryResponse{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		Message:   i.Message,
		Status:    i.Status,
		ArtistID:  i.ArtistID,
		ArtworkID: i.ArtworkID,
		CreatedAt: i.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
	if i.Artist != nil {
		resp.Artist = &RelatedArtist{ID: i.Artist.ID, Name: i.Artist.Name}
	}
	if i.Artwork != nil {
		resp.Artwork = &RelatedArtwork{ID: i.Artwork.ID, Title: i.Artwork.Title}
	}
	return resp
}
