package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtaufique8084/TMS/auth"
)

func gatedHandler(t *testing.T, signer auth.Signer, gotUserID *int) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserID(r.Context())
		require.True(t, ok, "user id must be attached downstream of the gate")
		*gotUserID = id
		w.WriteHeader(http.StatusOK)
	})
	return Auth(signer)(next)
}

func TestAuthMissingHeader(t *testing.T) {
	signer := auth.Signer{Key: []byte("test-secret"), TTL: time.Hour}
	var userID int
	handler := gatedHandler(t, signer, &userID)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMalformedScheme(t *testing.T) {
	signer := auth.Signer{Key: []byte("test-secret"), TTL: time.Hour}
	var userID int
	handler := gatedHandler(t, signer, &userID)

	for _, header := range []string{"Basic abc", "Bearer", "Bearer ", "token"} {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	signer := auth.Signer{Key: []byte("test-secret"), TTL: time.Hour}
	var userID int
	handler := gatedHandler(t, signer, &userID)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthExpiredToken(t *testing.T) {
	signer := auth.Signer{Key: []byte("test-secret"), TTL: time.Hour}
	expired := auth.Signer{Key: []byte("test-secret"), TTL: -time.Minute}
	token, err := expired.Issue(7)
	require.NoError(t, err)

	var userID int
	handler := gatedHandler(t, signer, &userID)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthValidToken(t *testing.T) {
	signer := auth.Signer{Key: []byte("test-secret"), TTL: time.Hour}
	token, err := signer.Issue(7)
	require.NoError(t, err)

	var userID int
	handler := gatedHandler(t, signer, &userID)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, userID)
}
