package auth

import (
	"errors"
	"net/http"
	"time"

	"artcatalog/database"
	"artcatalog/internal/domain/admins"
	"artcatalog/internal/logger"

	"github.com/gin-gonic/gin"
)

// POST /api/auth/login
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	sessionID, identity, err := admins.Login(database.DB, input.Email, input.Password, time.Now())
	if errors.Is(err, admins.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		logger.L.Errorw("admin login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	setSessionCookie(c, sessionID)
	c.JSON(http.StatusOK, gin.H{"user": identity})
}

// POST /api/auth/logout
//
// Always clears the cookie and answers 204, even when revoking the session
// row fails.
func Logout(c *gin.Context) {
	if sessionID := SessionIDFromRequest(c); sessionID != "" {
		if err := admins.Logout(database.DB, sessionID, time.Now()); err != nil {
			logger.L.Warnw("session revoke failed", "error", err)
		}
	}

	clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

// GET /api/auth/me
func Me(c *gin.Context) {
	identity, err := admins.ResolveSession(database.DB, SessionIDFromRequest(c), time.Now())
	if err != nil {
		logger.L.Errorw("session resolution failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if identity == nil {
		clearSessionCookie(c)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": identity})
}
