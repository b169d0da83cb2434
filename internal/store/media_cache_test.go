package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaCacheFetchesOnce(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"v":"5.5.7","layers":[]}`))
	}))
	defer server.Close()

	cache := NewMediaCache(nil)
	url := server.URL + "/spin.json"

	first, err := cache.Animation(context.Background(), url)
	require.NoError(t, err)
	second, err := cache.Animation(context.Background(), url)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load())
	assert.True(t, cache.Cached(url))
}

func TestMediaCacheRejectsInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("GIF89a"))
	}))
	defer server.Close()

	cache := NewMediaCache(nil)
	_, err := cache.Animation(context.Background(), server.URL+"/spin.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
	assert.False(t, cache.Cached(server.URL+"/spin.json"))
}

func TestMediaCacheFailureIsNotCached(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"v":"5.5.7"}`))
	}))
	defer server.Close()

	cache := NewMediaCache(nil)
	url := server.URL + "/spin.json"

	_, err := cache.Animation(context.Background(), url)
	require.Error(t, err)

	// A later attempt retries instead of replaying the failure.
	data, err := cache.Animation(context.Background(), url)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, int32(2), hits.Load())
}

func TestMediaCacheConcurrentCallersShareOneFetch(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		w.Write([]byte(`{"v":"5.5.7"}`))
	}))
	defer server.Close()

	cache := NewMediaCache(nil)
	url := server.URL + "/spin.json"

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := cache.Animation(context.Background(), url)
			done <- err
		}()
	}

	require.Eventually(t, func() bool { return hits.Load() >= 1 }, 2*time.Second, time.Millisecond)
	close(release)

	for i := 0; i < 2; i++ {
		require.NoError(t, <-done)
	}
	assert.Equal(t, int32(1), hits.Load())
}
