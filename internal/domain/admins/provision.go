package admins

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdmin upserts the provisioning admin account. Safe to run on every
// startup: an existing account gets its password rehashed and reactivated.
func EnsureAdmin(db *gorm.DB, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return err
	}

	email = normalizeEmail(email)

	var existing AdminUser
	err = db.Where("email = ?", email).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&AdminUser{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: string(hash),
			Role:         RoleAdmin,
			IsActive:     true,
		}).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&existing).Updates(map[string]interface{}{
		"password_hash": string(hash),
		"role":          RoleAdmin,
		"is_active":     true,
	}).Error
}
