package admins

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SessionTTL is the fixed validity window of an admin session from issuance.
const SessionTTL = 7 * 24 * time.Hour

// BcryptCost is used for admin password hashes.
const BcryptCost = 12

// ErrInvalidCredentials deliberately covers unknown email, inactive user and
// password mismatch alike, so responses never leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the resolved admin behind a valid session.
type Identity struct {
	ID    string    `json:"id"`
	Email string    `json:"email"`
	Role  AdminRole `json:"role"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login checks credentials and issues a new session valid for SessionTTL.
// Prior sessions of the same user stay valid; concurrent sessions are allowed.
func Login(db *gorm.DB, email, password string, now time.Time) (string, *Identity, error) {
	var user AdminUser
	err := db.Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	session := AdminSession{
		ID:          uuid.NewString(),
		AdminUserID: user.ID,
		ExpiresAt:   now.Add(SessionTTL),
	}
	if err := db.Create(&session).Error; err != nil {
		return "", nil, err
	}

	return session.ID, &Identity{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// Logout revokes the session. Idempotent: a missing or already revoked
// session is a no-op.
func Logout(db *gorm.DB, sessionID string, now time.Time) error {
	return db.Model(&AdminSession{}).
		Where("id = ? AND revoked_at IS NULL", sessionID).
		Update("revoked_at", now).Error
}

// ResolveSession maps a session id to the owning admin identity. It returns
// (nil, nil) for an empty or unknown id, a revoked or expired session, or an
// inactive owner. Callers must treat nil as unauthenticated.
func ResolveSession(db *gorm.DB, sessionID string, now time.Time) (*Identity, error) {
	if sessionID == "" {
		return nil, nil
	}

	var session AdminSession
	err := db.Preload("AdminUser").First(&session, "id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if session.RevokedAt != nil || !now.Before(session.ExpiresAt) {
		return nil, nil
	}
	if session.AdminUser == nil || !session.AdminUser.IsActive {
		return nil, nil
	}

	u := session.AdminUser
	return &Identity{ID: u.ID, Email: u.Email, Role: u.Role}, nil
}
