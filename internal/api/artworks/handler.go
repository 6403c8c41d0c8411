package artworks

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
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid artwork id"})
		return 0, false
	}
	return uint(id), true
}

// GET /api/artworks?page&pageSize&search&artistId&category
func ListArtworks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	artistID, _ := strconv.ParseUint(c.Query("artistId"), 10, 32)

	query := catalog.ArtworkListQuery{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		ArtistID: uint(artistID),
		Category: catalog.ArtworkCategory(c.Query("category")),
	}.Normalized()

	items, total, err := catalog.ListArtworks(database.DB, query)
	if err != nil {
		logger.L.Errorw("artwork list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load artworks"})
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

// GET /api/artworks/:id
func GetArtwork(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	artwork, err := catalog.GetArtworkByID(database.DB, id)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Artwork not found"})
		return
	}
	if err != nil {
		logger.L.Errorw("artwork lookup failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load artwork"})
		return
	}

	c.JSON(http.StatusOK, artwork)
}

// POST /api/artworks
func CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	artwork := catalog.Artwork{
		Title:         req.Title,
		Description:   req.Description,
		Year:          req.Year,
		ImageURL:      req.ImageURL,
		ImagePublicID: req.ImagePublicID,
		Technique:     req.Technique,
		Style:         req.Style,
		Motive:        req.Motive,
		Orientation:   req.Orientation,
		Size:          req.Size,
		Framed:        req.Framed,
		Category:      req.Category,
		ArtistID:      req.ArtistID,
	}
	err := catalog.CreateArtwork(database.DB, &artwork)
	if errors.Is(err, catalog.ErrArtistNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Artist not found"})
		return
	}
	if err != nil {
		logger.L.Errorw("artwork create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create artwork"})
		return
	}

	c.JSON(http.StatusCreated, artwork)
}

// PUT /api/artworks/:id
func UpdateArtwork(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	artwork, err := catalog.UpdateArtwork(c.Request.Context(), database.DB, media.Default, id, req.toPatch())
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Artwork not found"})
		return
	}
	if errors.Is(err, catalog.ErrArtistNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Artist not found"})
		return
	}
	if err != nil {
		logger.L.Errorw("artwork update failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update artwork"})
		return
	}

	c.JSON(http.StatusOK, artwork)
}

// DELETE /api/artworks/:id
func DeleteArtwork(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := catalog.DeleteArtwork(c.Request.Context(), database.DB, media.Default, id)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Artwork not found"})
		return
	}
	if err != nil {
		logger.L.Errorw("artwork delete failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete artwork"})
		return
	}

	c.Status(http.StatusNoContent)
}
