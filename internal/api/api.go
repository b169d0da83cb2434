// Package api wraps every operation of the platform REST API in a typed
// method. One service per resource, one method per endpoint; responses are
// decoded bodies, failures are *errors.APIError from the transport layer.
package api

import (
	"raffle-admin-panel/internal/platform/backend"
)

// Client bundles the resource services over a shared pair of transports:
// an anonymous one for the auth endpoints and a bearer-authenticated one
// for everything else.
type Client struct {
	Auth         *AuthService
	DailyRewards *DailyRewardService
	Tasks        *TaskService
	Products     *ProductService
	Raffles      *RaffleService
	Prizes       *PrizeService
	Packages     *PackageService
	Users        *UserService
	UserPrizes   *UserPrizeService
	Leaderboard  *LeaderboardService
	Cases        *CaseService
	Referrals    *ReferralService
}

func NewClient(baseURL string, tokens *backend.TokenStore) *Client {
	host := backend.New(baseURL)
	authHost := backend.NewWithAuth(baseURL, tokens)

	return &Client{
		Auth:         &AuthService{host: host, authHost: authHost, tokens: tokens},
		DailyRewards: &DailyRewardService{c: authHost},
		Tasks:        &TaskService{c: authHost},
		Products:     &ProductService{c: authHost},
		Raffles:      &RaffleService{c: authHost},
		Prizes:       &PrizeService{c: authHost},
		Packages:     &PackageService{c: authHost},
		Users:        &UserService{c: authHost},
		UserPrizes:   &UserPrizeService{c: authHost},
		Leaderboard:  &LeaderboardService{c: authHost},
		Cases:        &CaseService{c: authHost},
		Referrals:    &ReferralService{c: authHost},
	}
}
