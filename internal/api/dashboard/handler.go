package dashboard

import (
	"fmt"
	"net/http"
	"time"

	"artcatalog/database"
	"artcatalog/internal/domain/catalog"
	"artcatalog/internal/domain/inquiries"
	"artcatalog/internal/logger"

	"github.com/gin-gonic/gin"
)

type RecentArtwork struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"createdAt"`
	ImageURL   *string   `json:"imageUrl"`
	ArtistName string    `json:"artistName"`
}

type RecentArtist struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	AvatarURL *string   `json:"avatarUrl"`
}

type RecentInquiry struct {
	ID        uint                    `json:"id"`
	Name      string                  `json:"name"`
	CreatedAt time.Time               `json:"createdAt"`
	Regarding string                  `json:"regarding"`
	Status    inquiries.InquiryStatus `json:"status"`
}

type DashboardResponse struct {
	ArtworksCount     int64 `json:"artworksCount"`
	ArtistsCount      int64 `json:"artistsCount"`
	InquiriesNewCount int64 `json:"inquiriesNewCount"`
	InquiriesAllCount int64 `json:"inquiriesAllCount"`

	LastInquiryAt *time.Time `json:"lastInquiryAt"`

	LastArtworks       []RecentArtwork `json:"lastArtworks"`
	LastArtists        []RecentArtist  `json:"lastArtists"`
	LatestNewInquiries []RecentInquiry `json:"latestNewInquiries"`
}

func regarding(i inquiries.Inquiry) string {
	switch {
	case i.Artwork != nil:
		return fmt.Sprintf("Artwork: %s", i.Artwork.Title)
	case i.Artist != nil:
		return fmt.Sprintf("Artist: %s", i.Artist.Name)
	case i.ArtworkID != nil:
		return fmt.Sprintf("Artwork ID: %d", *i.ArtworkID)
	case i.ArtistID != nil:
		return fmt.Sprintf("Artist ID: %d", *i.ArtistID)
	default:
		return "—"
	}
}

// GET /api/admin/dashboard
func AdminDashboard(c *gin.Context) {
	db := database.DB
	var resp DashboardResponse

	db.Model(&catalog.Artwork{}).Count(&resp.ArtworksCount)
	db.Model(&catalog.Artist{}).Count(&resp.ArtistsCount)
	db.Model(&inquiries.Inquiry{}).Count(&resp.InquiriesAllCount)
	db.Model(&inquiries.Inquiry{}).Where("status = ?", inquiries.StatusNew).Count(&resp.InquiriesNewCount)

	var lastInquiry inquiries.Inquiry
	if err := db.Order("created_at DESC").First(&lastInquiry).Error; err == nil {
		t := lastInquiry.CreatedAt
		resp.LastInquiryAt = &t
	}

	var lastArtworks []catalog.Artwork
	if err := db.Preload("Artist").Order("created_at DESC").Limit(3).Find(&lastArtworks).Error; err != nil {
		logger.L.Errorw("dashboard artworks query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load dashboard"})
		return
	}
	resp.LastArtworks = make([]RecentArtwork, 0, len(lastArtworks))
	for _, a := range lastArtworks {
		artistName := ""
		if a.Artist != nil {
			artistName = a.Artist.Name
		}
		resp.LastArtworks = append(resp.LastArtworks, RecentArtwork{
			ID:         a.ID,
			Title:      a.Title,
			CreatedAt:  a.CreatedAt,
			ImageURL:   a.ImageURL,
			ArtistName: artistName,
		})
	}

	var lastArtists []catalog.Artist
	if err := db.Order("created_at DESC").Limit(3).Find(&lastArtists).Error; err != nil {
		logger.L.Errorw("dashboard artists query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load dashboard"})
		return
	}
	resp.LastArtists = make([]RecentArtist, 0, len(lastArtists))
	for _, a := range lastArtists {
		resp.LastArtists = append(resp.LastArtists, RecentArtist{
			ID:        a.ID,
			Name:      a.Name,
			CreatedAt: a.CreatedAt,
			AvatarURL: a.AvatarURL,
		})
	}

	var latestNew []inquiries.Inquiry
	if err := db.Preload("Artist").Preload("Artwork").
		Where("status = ?", inquiries.StatusNew).
		Order("created_at DESC").Limit(3).
		Find(&latestNew).Error; err != nil {
		logger.L.Errorw("dashboard inquiries query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load dashboard"})
		return
	}
	resp.LatestNewInquiries = make([]RecentInquiry, 0, len(latestNew))
	for _, i := range latestNew {
		resp.LatestNewInquiries = append(resp.LatestNewInquiries, RecentInquiry{
			ID:        i.ID,
			Name:      i.Name,
			CreatedAt: i.CreatedAt,
			Regarding: regarding(i),
			Status:    i.Status,
		})
	}

	c.JSON(http.StatusOK, resp)
}
