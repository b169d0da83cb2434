package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"raffle-admin-panel/internal/common/errors"
	"raffle-admin-panel/internal/models"
	"raffle-admin-panel/internal/platform/backend"
)

// AuthService handles login flows and the startup session check. Successful
// calls persist the issued token and return the user decoded from its claims.
type AuthService struct {
	host     *backend.Client // anonymous
	authHost *backend.Client
	tokens   *backend.TokenStore
}

type tokenResponse struct {
	Token string `json:"token"`
}

type userClaims struct {
	models.UserInfo
	jwt.RegisteredClaims
}

// decodeUser extracts the user from the token claims without verifying the
// signature: the backend signed it and remains the authority, the panel only
// needs the embedded role and profile.
func decodeUser(token string) (*models.UserInfo, error) {
	claims := &userClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, errors.CodeBackend, "malformed session token")
	}
	user := claims.UserInfo
	return &user, nil
}

func (s *AuthService) session(resp tokenResponse) (*models.UserInfo, error) {
	if err := s.tokens.Set(resp.Token); err != nil {
		return nil, errors.Wrap(err, errors.CodeNetwork, "failed to persist session token")
	}
	return decodeUser(resp.Token)
}

// Telegram authenticates with Telegram Mini App init data.
func (s *AuthService) Telegram(ctx context.Context, initData string) (*models.UserInfo, error) {
	var resp tokenResponse
	err := s.host.PostJSON(ctx, "api/user/auth/telegram", map[string]string{"initData": initData}, &resp)
	if err != nil {
		return nil, err
	}
	return s.session(resp)
}

// Register creates an email/password account.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.UserInfo, error) {
	var resp tokenResponse
	err := s.host.PostJSON(ctx, "api/user/registration", map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	return s.session(resp)
}

// Login authenticates with email/password credentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.UserInfo, error) {
	var resp tokenResponse
	err := s.host.PostJSON(ctx, "api/user/login", map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	return s.session(resp)
}

// Check re-establishes the session from the persisted token. The backend
// answers with a refreshed token which replaces the stored one.
func (s *AuthService) Check(ctx context.Context) (*models.UserInfo, error) {
	var resp tokenResponse
	if err := s.authHost.GetJSON(ctx, "api/user/auth", nil, &resp); err != nil {
		return nil, err
	}
	return s.session(resp)
}
