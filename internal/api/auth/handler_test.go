package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"artcatalog/database"
	authapi "artcatalog/internal/api/auth"
	"artcatalog/internal/domain/admins"
	"artcatalog/internal/domain/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database.DB = testdb.Open(t)
	require.NoError(t, admins.EnsureAdmin(database.DB, "gallery@example.com", "secret-pass-1"))

	r := gin.New()
	r.POST("/api/auth/login", authapi.Login)
	r.POST("/api/auth/logout", authapi.Logout)
	r.GET("/api/auth/me", authapi.Me)
	return r
}

func doJSON(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == authapi.SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"gallery@example.com","password":"secret-pass-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Greater(t, cookie.MaxAge, 0)

	var body struct {
		User struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "gallery@example.com", body.User.Email)
	assert.Equal(t, "ADMIN", body.User.Role)
}

func TestLoginRejections(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"wrong password", `{"email":"gallery@example.com","password":"nope"}`, http.StatusUnauthorized},
		{"unknown email", `{"email":"other@example.com","password":"secret-pass-1"}`, http.StatusUnauthorized},
		{"malformed email", `{"email":"not-an-email","password":"x"}`, http.StatusBadRequest},
		{"missing password", `{"email":"gallery@example.com"}`, http.StatusBadRequest},
		{"empty body", ``, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/auth/login", tt.body)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestMeWithValidSession(t *testing.T) {
	r := setupRouter(t)

	login := doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"gallery@example.com","password":"secret-pass-1"}`)
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(t, login)

	w := doJSON(r, http.MethodGet, "/api/auth/me", "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gallery@example.com")
}

func TestMeWithoutSession(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeWithBogusCookie(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/auth/me", "",
		&http.Cookie{Name: authapi.SessionCookieName, Value: "bogus"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// the stale cookie gets cleared
	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestLogoutRevokesAndClears(t *testing.T) {
	r := setupRouter(t)

	login := doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"gallery@example.com","password":"secret-pass-1"}`)
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(t, login)

	logout := doJSON(r, http.MethodPost, "/api/auth/logout", "", cookie)
	assert.Equal(t, http.StatusNoContent, logout.Code)
	cleared := sessionCookie(t, logout)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// the revoked session no longer authenticates
	me := doJSON(r, http.MethodGet, "/api/auth/me", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, me.Code)
}

func TestLogoutWithoutCookie(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/logout", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}
