package inquiries

import (
	"errors"
	"net/http"
	"strconv"

	"artcatalog/database"
	domain "artcatalog/internal/domain/inquiries"
	"artcatalog/internal/logger"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid inquiry id"})
		return 0, false
	}
	return uint(id), true
}

// POST /api/inquiries (public)
func CreateInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	inquiry := domain.Inquiry{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		ArtistID:  req.ArtistID,
		ArtworkID: req.ArtworkID,
	}
	err := domain.Create(database.DB, &inquiry)
	if errors.Is(err, domain.ErrMissingReference) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Either artistId or artworkId is required"})
		return
	}
	if err != nil {
		logger.L.Errorw("inquiry create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create inquiry"})
		return
	}

	c.JSON(http.StatusCreated, toResponse(inquiry))
}

// GET /api/inquiries?page&pageSize&status&search
func ListInquiries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	query := domain.ListQuery{
		Page:     page,
		PageSize: pageSize,
		Status:   domain.InquiryStatus(c.Query("status")),
		Search:   c.Query("search"),
	}.Normalized()

	items, total, err := domain.List(database.DB, query)
	if err != nil {
		logger.L.Errorw("inquiry list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load inquiries"})
		return
	}

	out := make([]InquiryResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toResponse(i))
	}

	totalPages := (total + int64(query.PageSize) - 1) / int64(query.PageSize)
	c.JSON(http.StatusOK, gin.H{
		"items": out,
		"meta": gin.H{
			"page":       query.Page,
			"pageSize":   query.PageSize,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// GET /api/inquiries/stats
func GetInquiryStats(c *gin.Context) {
	stats, err := domain.GetStats(database.DB)
	if err != nil {
		logger.L.Errorw("inquiry stats failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load inquiry stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/inquiries/:id
func GetInquiry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	inquiry, err := domain.GetByID(database.DB, id)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Inquiry not found"})
		return
	}
	if err != nil {
		logger.L.Errorw("inquiry lookup failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load inquiry"})
		return
	}

	c.JSON(http.StatusOK, toResponse(*inquiry))
}

// PUT /api/inquiries/:id
func UpdateInquiry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": err.Error()})
		return
	}

	inquiry, err := domain.UpdateStatus(database.DB, id, req.Status)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Inquiry not found"})
		return
	}
	if err != nil {
		logger.L.Errorw("inquiry update failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update inquiry"})
		return
	}

	c.JSON(http.StatusOK, toResponse(*inquiry))
}
