package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raffle-admin-panel/internal/common/errors"
)

func newTokens(t *testing.T, token string) *TokenStore {
	t.Helper()
	ts := NewTokenStore(filepath.Join(t.TempDir(), "token"))
	if token != "" {
		require.NoError(t, ts.Set(token))
	}
	return ts
}

func TestAuthenticatedRequestHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewWithAuth(server.URL, newTokens(t, "abc123"))
	var out map[string]any
	require.NoError(t, client.GetJSON(context.Background(), "api/task/get", nil, &out))

	assert.Equal(t, "Bearer abc123", got.Get("Authorization"))
	assert.Equal(t, "true", got.Get("skip_zrok_interstitial"))
}

func TestAnonymousRequestCarriesNoBearer(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL)
	var out map[string]any
	require.NoError(t, client.GetJSON(context.Background(), "api/user/login", nil, &out))

	assert.Empty(t, got.Get("Authorization"))
	assert.Equal(t, "true", got.Get("skip_zrok_interstitial"))
}

func TestTokenRefreshIsPickedUpPerRequest(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	tokens := newTokens(t, "old")
	client := NewWithAuth(server.URL, tokens)

	require.NoError(t, client.GetJSON(context.Background(), "api/user/auth", nil, nil))
	assert.Equal(t, "Bearer old", got)

	require.NoError(t, tokens.Set("new"))
	require.NoError(t, client.GetJSON(context.Background(), "api/user/auth", nil, nil))
	assert.Equal(t, "Bearer new", got)
}

func TestErrorEnvelopeIsDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "day must be between 1 and 7"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.PostJSON(context.Background(), "api/daily-reward/create", map[string]int{"day": 9}, nil)

	require.Error(t, err)
	apiErr, ok := errors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeValidation, apiErr.Code)
	assert.Equal(t, "day must be between 1 and 7", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestRateLimitedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewWithAuth(server.URL, newTokens(t, "abc123"))
	err := client.GetJSON(context.Background(), "api/raffle/current", nil, nil)

	assert.True(t, errors.IsRateLimited(err))
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := New(server.URL)
	err := client.GetJSON(context.Background(), "api/raffle/current", nil, nil)

	require.Error(t, err)
	apiErr, ok := errors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeNetwork, apiErr.Code)
}

func TestQueryEncoding(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	query := url.Values{}
	query.Set("limit", "20")
	query.Set("offset", "40")

	client := New(server.URL)
	var out []any
	require.NoError(t, client.GetJSON(context.Background(), "api/raffle/history", query, &out))

	assert.Equal(t, "20", got.Get("limit"))
	assert.Equal(t, "40", got.Get("offset"))
}

func TestMalformedBodyIsBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := New(server.URL)
	var out map[string]any
	err := client.GetJSON(context.Background(), "api/raffle/current", nil, &out)

	require.Error(t, err)
	apiErr, ok := errors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeBackend, apiErr.Code)
}
