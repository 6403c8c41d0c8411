package artists

import (
	"errors"
	"net/http"
	"strconv"

	"artcatalog/database"
	"artcatalog/internal/domain/catalog"
	"artcatalog/internal/logger"
	"artcatalog/internal/media"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid artist id"})
		return 0, false
	}
	return uint(id), true
}

// GET /api/artists?page&pageSize&search&primaryCategory
func ListArtists(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	query := catalog.ArtistListQuery{
		Page:            page,
		PageSize:        pageSize,
		Search:          c.Query("search"),
		PrimaryCategory: catalog.ArtworkCategory(c.Query("primaryCategory")),
	}.Normalized()

	items, total, err := catalog.ListArtists(database.DB, query)
	if err != nil {
		logger.L.Errorw("artist list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load artists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"meta":  listMeta(query.Page, query.PageSize, total),
	})
}

func listMeta(page, pageSize int, total int64) gin.H {
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	return gin.H{
		"page":       page,
		"pageSize":   pageSize,
		"total":      total,
		"totalPages": totalPages,
	}
}

// GET /api/artists/:id
func GetArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	artist, err := catalog.GetArtistByID(database.DB, id)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Artist not found"})
		return
	}
	if err != nil {
		logger.L.Errorw("artist lookup failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load artist"})
		return
	}

	c.JSON(http.StatusOK, artist)
}

// POST /api/artists
func CreateArtist(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	artist := catalog.Artist{
		Name:            req.Name,
		Bio:             req.Bio,
		Country:         req.Country,
		BirthYear:       req.BirthYear,
		DeathYear:       req.DeathYear,
		AvatarURL:       req.AvatarURL,
		AvatarPublicID:  req.AvatarPublicID,
		PrimaryCategory: req.PrimaryCategory,
	}
	if err := catalog.CreateArtist(database.DB, &artist); err != nil {
		logger.L.Errorw("artist create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create artist"})
		return
	}

	c.JSON(http.StatusCreated, artist)
}

// PUT /api/artists/:id
func UpdateArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	artist, err := catalog.UpdateArtist(c.Request.Context(), database.DB, media.Default, id, req.toPatch())
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Artist not found"})
		return
	}
	if err != nil {
		logger.L.Errorw("artist update failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update artist"})
		return
	}

	c.JSON(http.StatusOK, artist)
}

// DELETE /api/artists/:id
func DeleteArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := catalog.DeleteArtist(c.Request.Context(), database.DB, media.Default, id)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Artist not found"})
		return
	}
	if err != nil {
		logger.L.Errorw("artist delete failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete artist"})
		return
	}

	c.Status(http.StatusNoContent)
}
