package store

import (
	"context"
	"sync"

	"raffle-admin-panel/internal/api"
	"raffle-admin-panel/internal/common/errors"
	"raffle-admin-panel/internal/common/logger"
	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

// UserStore holds the session state: the current user, the authentication
// flag and the rate-limit flag that short-circuits the whole panel.
// All fields are private behind accessors; every write emits on Changed.
type UserStore struct {
	api    *api.Client
	tokens *backend.TokenStore

	mu              sync.RWMutex
	user            *models.UserInfo
	isAuth          bool
	loading         bool
	tooManyRequests bool

	changed Signal
}

func NewUserStore(client *api.Client, tokens *backend.TokenStore) *UserStore {
	return &UserStore{api: client, tokens: tokens}
}

func (s *UserStore) Changed() *Signal { return &s.changed }

func (s *UserStore) User() *models.UserInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *UserStore) IsAuth() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuth
}

func (s *UserStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *UserStore) TooManyRequests() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tooManyRequests
}

func (s *UserStore) setSession(user *models.UserInfo, auth bool) {
	s.mu.Lock()
	s.user = user
	s.isAuth = auth
	s.mu.Unlock()
	s.changed.Emit()
}

func (s *UserStore) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
	s.changed.Emit()
}

// noteRateLimit raises the panel-wide flag when the backend answered 429.
// Nothing lowers it at runtime; the operator restarts once the limit clears.
func (s *UserStore) noteRateLimit(err error) {
	if !errors.IsRateLimited(err) {
		return
	}
	s.mu.Lock()
	s.tooManyRequests = true
	s.mu.Unlock()
	s.changed.Emit()
}

// TelegramLogin authenticates with Telegram Mini App init data.
func (s *UserStore) TelegramLogin(ctx context.Context, initData string) error {
	user, err := s.api.Auth.Telegram(ctx, initData)
	if err != nil {
		s.noteRateLimit(err)
		return err
	}
	s.setSession(user, true)
	return nil
}

// Login authenticates with email/password credentials.
func (s *UserStore) Login(ctx context.Context, email, password string) error {
	user, err := s.api.Auth.Login(ctx, email, password)
	if err != nil {
		s.noteRateLimit(err)
		return err
	}
	s.setSession(user, true)
	return nil
}

// Register creates an account and signs it in.
func (s *UserStore) Register(ctx context.Context, email, password string) error {
	user, err := s.api.Auth.Register(ctx, email, password)
	if err != nil {
		s.noteRateLimit(err)
		return err
	}
	s.setSession(user, true)
	return nil
}

// CheckAuth re-establishes the session from the persisted token. Any
// failure, transient or not, clears the session and falls through to login.
func (s *UserStore) CheckAuth(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	user, err := s.api.Auth.Check(ctx)
	if err != nil {
		s.noteRateLimit(err)
		s.setSession(nil, false)
		if clearErr := s.tokens.Clear(); clearErr != nil {
			logger.Warn().Err(clearErr).Msg("failed to clear session token")
		}
		return err
	}

	s.setSession(user, true)
	return nil
}

// Logout drops the session locally. The backend keeps no session state.
func (s *UserStore) Logout() {
	s.setSession(nil, false)
	if err := s.tokens.Clear(); err != nil {
		logger.Warn().Err(err).Msg("failed to clear session token")
	}
}
