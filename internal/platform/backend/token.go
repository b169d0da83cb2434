package backend

import (
	"os"
	"strings"
	"sync"
)

// TokenStore keeps the session token the way the dashboard kept it in the
// browser: one string under a fixed location, read on every authenticated
// request and surviving restarts.
type TokenStore struct {
	mu    sync.Mutex
	path  string
	token string
}

func NewTokenStore(path string) *TokenStore {
	ts := &TokenStore{path: path}
	if data, err := os.ReadFile(path); err == nil {
		ts.token = strings.TrimSpace(string(data))
	}
	return ts
}

func (ts *TokenStore) Get() string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.token
}

func (ts *TokenStore) Set(token string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.token = token
	return os.WriteFile(ts.path, []byte(token), 0o600)
}

func (ts *TokenStore) Clear() error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.token = ""
	err := os.Remove(ts.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
