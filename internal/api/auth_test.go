package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *backend.TokenStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := backend.NewTokenStore(filepath.Join(t.TempDir(), "token"))
	return NewClient(server.URL, tokens), tokens
}

func TestLoginDecodesUserFromToken(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		"id":      int64(42),
		"email":   "admin@example.com",
		"role":    models.RoleAdmin,
		"balance": 10.5,
	})

	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]string{"token": token})
	}))

	user, err := client.Auth.Login(context.Background(), "admin@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, user.IsAdmin())
	assert.Equal(t, "10.5", user.Balance.String())

	// The issued token is persisted for the authenticated transport.
	assert.Equal(t, token, tokens.Get())
}

func TestCheckReplacesStoredToken(t *testing.T) {
	refreshed := mintToken(t, jwt.MapClaims{"id": int64(42), "role": models.RoleAdmin})

	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/auth", r.URL.Path)
		assert.Equal(t, "Bearer stale", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"token": refreshed})
	}))
	require.NoError(t, tokens.Set("stale"))

	user, err := client.Auth.Check(context.Background())
	require.NoError(t, err)

	assert.True(t, user.IsAdmin())
	assert.Equal(t, refreshed, tokens.Get())
}

func TestTelegramLoginPostsInitData(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{"id": int64(7), "role": models.RoleUser})

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/auth/telegram", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "query_id=abc&user=...", body["initData"])

		json.NewEncoder(w).Encode(map[string]string{"token": token})
	}))

	user, err := client.Auth.Telegram(context.Background(), "query_id=abc&user=...")
	require.NoError(t, err)
	assert.False(t, user.IsAdmin())
}

func TestMalformedTokenIsRejected(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "not-a-jwt"})
	}))

	_, err := client.Auth.Login(context.Background(), "admin@example.com", "hunter2")
	assert.Error(t, err)
}
