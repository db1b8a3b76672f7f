package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wedding/config"
	"wedding/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T, s store.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(s.Sessions(), "wedding_session"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": GetCurrentUserID(c)})
	})
	return r
}

func TestAuth_SessionCookie(t *testing.T) {
	s := store.NewMemory(time.Hour)
	r := setupAuthRouter(t, s)

	sess, err := s.Sessions().Create(7)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "wedding_session", Value: sess.Token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
}

func TestAuth_NoCredentials(t *testing.T) {
	s := store.NewMemory(time.Hour)
	r := setupAuthRouter(t, s)

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "未登录")
}

func TestAuth_InvalidCookie(t *testing.T) {
	s := store.NewMemory(time.Hour)
	r := setupAuthRouter(t, s)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "wedding_session", Value: "deadbeef"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
}

func TestAuth_ExpiredSession(t *testing.T) {
	s := store.NewMemory(-time.Second)
	r := setupAuthRouter(t, s)

	sess, err := s.Sessions().Create(7)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "wedding_session", Value: sess.Token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
}

func TestAuth_BearerToken(t *testing.T) {
	config.GlobalConfig = &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	defer func() { config.GlobalConfig = nil }()
	InitJWT(config.GlobalConfig)

	s := store.NewMemory(time.Hour)
	r := setupAuthRouter(t, s)

	token, err := GenerateToken(9, "appuser", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":9`)
}

func TestAuth_BearerToken_Invalid(t *testing.T) {
	config.GlobalConfig = &config.Config{JWT: config.JWTConfig{Secret: "test-secret"}}
	defer func() { config.GlobalConfig = nil }()
	InitJWT(config.GlobalConfig)

	s := store.NewMemory(time.Hour)
	r := setupAuthRouter(t, s)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
}
