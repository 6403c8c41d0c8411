package uploads

import (
	"net/http"

	"artcatalog/config"
	"artcatalog/internal/logger"
	"artcatalog/internal/media"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps a single image upload at 5 MiB.
const maxUploadBytes = 5 << 20

// POST /api/uploads/artist-avatar
func UploadArtistAvatar(c *gin.Context) {
	uploadImage(c, config.CLOUDINARY_ARTISTS_FOLDER)
}

// POST /api/uploads/artwork-image
func UploadArtworkImage(c *gin.Context) {
	uploadImage(c, config.CLOUDINARY_ARTWORKS_FOLDER)
}

func uploadImage(c *gin.Context, folder string) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File exceeds the 5 MiB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unreadable file"})
		return
	}
	defer file.Close()

	url, publicID, err := media.Default.Upload(c.Request.Context(), file, folder)
	if err != nil {
		logger.L.Errorw("image upload failed", "folder", folder, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url, "publicId": publicID})
}

// DELETE /api/uploads/artist-avatar?publicId=
// DELETE /api/uploads/artwork-image?publicId=
func DeleteImage(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "publicId is required"})
		return
	}

	if err := media.Default.Delete(c.Request.Context(), publicID); err != nil {
		logger.L.Errorw("image delete failed", "publicId", publicID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete image"})
		return
	}

	c.Status(http.StatusNoContent)
}
