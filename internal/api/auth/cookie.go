package auth

import (
	"net/http"

	"artcatalog/config"
	"artcatalog/internal/domain/admins"

	"github.com/gin-gonic/gin"
)

// SessionCookieName holds the admin session token on the browser side.
const SessionCookieName = "admin_session"

// SessionIDFromRequest returns the session token from the request cookie, or
// "" when absent.
func SessionIDFromRequest(c *gin.Context) string {
	v, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return v
}

// Dev keeps the cookie Lax and insecure so localhost frontends work; prod
// serves the frontend from another origin, so SameSite=None + Secure.
func cookieSameSite() http.SameSite {
	if config.IsProduction() {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

func setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(cookieSameSite())
	c.SetCookie(SessionCookieName, sessionID, int(admins.SessionTTL.Seconds()), "/", "", config.IsProduction(), true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(cookieSameSite())
	c.SetCookie(SessionCookieName, "", -1, "/", "", config.IsProduction(), true)
}
