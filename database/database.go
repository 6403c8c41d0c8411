package database

import (
	"log"

	"artcatalog/config"
	"artcatalog/internal/domain/admins"
	"artcatalog/internal/domain/catalog"
	"artcatalog/internal/domain/inquiries"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	db, err := gorm.Open(postgres.Open(config.DB_URL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&catalog.Artist{},
		&catalog.Artwork{},
		&inquiries.Inquiry{},
		&admins.AdminUser{},
		&admins.AdminSession{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}
}
