package admins

import "time"

type AdminRole string

const (
	RoleAdmin AdminRole = "ADMIN"
)

type AdminUser struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"not null;uniqueIndex:idx_admin_users_email" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         AdminRole `gorm:"type:text;not null;default:'ADMIN'" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AdminSession rows are append-only: the only mutation ever applied is
// setting RevokedAt once. Expiry is checked lazily at resolution time.
type AdminSession struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	AdminUserID string     `gorm:"type:uuid;not null;index" json:"adminUserId"`
	AdminUser   *AdminUser `gorm:"foreignKey:AdminUserID" json:"-"`
	ExpiresAt   time.Time  `gorm:"not null" json:"expiresAt"`
	RevokedAt   *time.Time `json:"revokedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
