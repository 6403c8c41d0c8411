package routes

import (
	artistsapi "artcatalog/internal/api/artists"
	artworksapi "artcatalog/internal/api/artworks"
	authapi "artcatalog/internal/api/auth"
	dashboardapi "artcatalog/internal/api/dashboard"
	inquiriesapi "artcatalog/internal/api/inquiries"
	uploadsapi "artcatalog/internal/api/uploads"
	"artcatalog/internal/app/http/middleware"
	"artcatalog/internal/domain/admins"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	auth.POST("/login", authapi.Login)
	auth.POST("/logout", authapi.Logout)
	auth.GET("/me", authapi.Me)

	artists := r.Group("/api/artists")
	artists.GET("", artistsapi.ListArtists)
	artists.GET("/:id", artistsapi.GetArtist)
	artists.POST("", artistsapi.CreateArtist)
	artists.PUT("/:id", artistsapi.UpdateArtist)
	artists.DELETE("/:id", artistsapi.DeleteArtist)

	artworks := r.Group("/api/artworks")
	artworks.GET("", artworksapi.ListArtworks)
	artworks.GET("/:id", artworksapi.GetArtwork)
	artworks.POST("", artworksapi.CreateArtwork)
	artworks.PUT("/:id", artworksapi.UpdateArtwork)
	artworks.DELETE("/:id", artworksapi.DeleteArtwork)

	inquiries := r.Group("/api/inquiries")
	// visitor-facing endpoint, so strip markup before binding
	inquiries.POST("", middleware.SanitizeInput(), inquiriesapi.CreateInquiry)
	inquiries.GET("", inquiriesapi.ListInquiries)
	inquiries.GET("/stats", inquiriesapi.GetInquiryStats)
	inquiries.GET("/:id", inquiriesapi.GetInquiry)
	inquiries.PUT("/:id", inquiriesapi.UpdateInquiry)

	uploads := r.Group("/api/uploads")
	uploads.POST("/artist-avatar", uploadsapi.UploadArtistAvatar)
	uploads.POST("/artwork-image", uploadsapi.UploadArtworkImage)
	uploads.DELETE("/artist-avatar", uploadsapi.DeleteImage)
	uploads.DELETE("/artwork-image", uploadsapi.DeleteImage)

	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireRoles(admins.RoleAdmin))
	admin.GET("/dashboard", dashboardapi.AdminDashboard)
}
