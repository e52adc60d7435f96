package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"contentdesk/internal/access/gate"
	"contentdesk/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestVerifyAccess(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	h := NewAccessHandler(gate.New("open-sesame"))

	t.Run("rejects empty code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/access/verify", strings.NewReader(`{"code":"  "}`))
		rec := httptest.NewRecorder()
		h.VerifyAccess(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, h.Gate.IsAuthenticated())
	})

	t.Run("rejects wrong code", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/access/verify", strings.NewReader(`{"code":"wrong-code"}`))
		rec := httptest.NewRecorder()
		h.VerifyAccess(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, h.Gate.IsAuthenticated())
	})

	t.Run("accepts the configured code and issues a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/access/verify", strings.NewReader(`{"code":"open-sesame"}`))
		rec := httptest.NewRecorder()
		h.VerifyAccess(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp VerifyResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.True(t, h.Gate.IsAuthenticated())
	})
}

func TestSessionAndLogout(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	h := NewAccessHandler(gate.New("open-sesame"))

	sessionStatus := func() bool {
		rec := httptest.NewRecorder()
		h.Session(rec, httptest.NewRequest(http.MethodGet, "/api/access/session", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp SessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.Authenticated
	}

	assert.False(t, sessionStatus())

	h.Gate.SetAuthenticated(true)
	assert.True(t, sessionStatus())

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/access/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sessionStatus())
}
