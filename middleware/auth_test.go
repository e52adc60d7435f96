package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"contentdesk/internal/access/gate"
	"contentdesk/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func signToken(t *testing.T, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"iat": time.Now().Unix()})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuth(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	g := gate.New("open-sesame")
	g.SetAuthenticated(true)

	var reached bool
	handler := Auth(g)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("rejects missing token", func(t *testing.T) {
		reached = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contents", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/api/contents", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/api/contents", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})

	t.Run("accepts bearer header token", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/api/contents", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
	})

	t.Run("accepts query string token", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/ws?token="+signToken(t, "test-secret"), nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, reached)
	})

	t.Run("rejects valid token after logout", func(t *testing.T) {
		g.Logout()
		defer g.SetAuthenticated(true)

		reached = false
		req := httptest.NewRequest(http.MethodGet, "/api/contents", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, reached)
	})
}
