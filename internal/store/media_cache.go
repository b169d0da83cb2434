package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"raffle-admin-panel/internal/common/errors"
)

// MediaCache caches Lottie animation documents by URL. Each URL is fetched
// at most once for the lifetime of the process; entries are never evicted.
// The set of animations is the handful attached to cases and prizes, so the
// cache stays small.
type MediaCache struct {
	http *http.Client

	mu      sync.Mutex
	entries map[string][]byte
	pending map[string]chan struct{}
}

func NewMediaCache(client *http.Client) *MediaCache {
	if client == nil {
		client = http.DefaultClient
	}
	return &MediaCache{
		http:    client,
		entries: make(map[string][]byte),
		pending: make(map[string]chan struct{}),
	}
}

// Animation returns the Lottie JSON document at url, fetching it on first
// use. Concurrent callers for the same URL share one fetch.
func (c *MediaCache) Animation(ctx context.Context, url string) ([]byte, error) {
	for {
		c.mu.Lock()
		if data, ok := c.entries[url]; ok {
			c.mu.Unlock()
			return data, nil
		}
		wait, inFlight := c.pending[url]
		if !inFlight {
			wait = make(chan struct{})
			c.pending[url] = wait
		}
		c.mu.Unlock()

		if inFlight {
			select {
			case <-wait:
				continue
			case <-ctx.Done():
				return nil, errors.Wrap(ctx.Err(), errors.CodeNetwork, "animation fetch canceled")
			}
		}

		data, err := c.fetch(ctx, url)

		c.mu.Lock()
		delete(c.pending, url)
		if err == nil {
			c.entries[url] = data
		}
		c.mu.Unlock()
		close(wait)

		return data, err
	}
}

func (c *MediaCache) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeNetwork, "bad animation url")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeNetwork, "failed to fetch animation")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.CodeBackend,
			fmt.Sprintf("animation fetch returned status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeNetwork, "failed to read animation body")
	}
	if !json.Valid(data) {
		return nil, errors.New(errors.CodeBackend, "animation is not valid JSON")
	}
	return data, nil
}

// Cached reports whether url is already resolved, without fetching.
func (c *MediaCache) Cached(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[url]
	return ok
}
