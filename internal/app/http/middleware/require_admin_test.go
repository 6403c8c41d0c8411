package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"artcatalog/database"
	authapi "artcatalog/internal/api/auth"
	"artcatalog/internal/app/http/middleware"
	"artcatalog/internal/domain/admins"
	"artcatalog/internal/domain/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database.DB = testdb.Open(t)
	require.NoError(t, admins.EnsureAdmin(database.DB, "gallery@example.com", "secret-pass-1"))

	r := gin.New()
	r.GET("/api/admin/dashboard", middleware.RequireRoles(admins.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":    c.GetString("admin_id"),
			"email": c.GetString("admin_email"),
		})
	})
	return r
}

func get(r *gin.Engine, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRolesWithoutCookie(t *testing.T) {
	r := gatedRouter(t)
	w := get(r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesWithInvalidCookie(t *testing.T) {
	r := gatedRouter(t)
	w := get(r, &http.Cookie{Name: authapi.SessionCookieName, Value: "bogus"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesWithValidSession(t *testing.T) {
	r := gatedRouter(t)

	sessionID, identity, err := admins.Login(database.DB, "gallery@example.com", "secret-pass-1", time.Now())
	require.NoError(t, err)

	w := get(r, &http.Cookie{Name: authapi.SessionCookieName, Value: sessionID})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), identity.Email)
}

func TestRequireRolesWithRevokedSession(t *testing.T) {
	r := gatedRouter(t)

	sessionID, _, err := admins.Login(database.DB, "gallery@example.com", "secret-pass-1", time.Now())
	require.NoError(t, err)
	require.NoError(t, admins.Logout(database.DB, sessionID, time.Now()))

	w := get(r, &http.Cookie{Name: authapi.SessionCookieName, Value: sessionID})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
