package models

import "github.com/shopspring/decimal"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// UserInfo mirrors the user row the backend encodes into the session token.
type UserInfo struct {
	ID             int64           `json:"id"`
	Email          string          `json:"email,omitempty"`
	TelegramID     int64           `json:"telegramId,omitempty"`
	Username       string          `json:"username,omitempty"`
	Role           string          `json:"role"`
	Balance        decimal.Decimal `json:"balance"`
	IsTonConnected bool            `json:"isTonConnected,omitempty"`
	TonAddress     string          `json:"tonAddress,omitempty"`
	Premium        bool            `json:"premium,omitempty"`
	Attempts       int             `json:"attempts,omitempty"`
	Tickets        int             `json:"tickets,omitempty"`
	ReferralCode   string          `json:"referralCode,omitempty"`
	ReferrerID     int64           `json:"referrerId,omitempty"`
}

func (u *UserInfo) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
