package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayoutStatus is the admin-driven state of a referral withdrawal request.
type PayoutStatus string

const (
	PayoutStatusPending  PayoutStatus = "pending"
	PayoutStatusApproved PayoutStatus = "approved"
	PayoutStatusRejected PayoutStatus = "rejected"
)

// ReferralPayoutRequest is a withdrawal against referral-earned balance.
type ReferralPayoutRequest struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	Amount        decimal.Decimal `json:"amount"`
	WalletAddress string          `json:"walletAddress"`
	Status        PayoutStatus    `json:"status"`
	AdminNotes    string          `json:"adminNotes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	User          *UserInfo       `json:"user,omitempty"`
}

// PayoutRequestPage is the server-paginated listing envelope.
type PayoutRequestPage struct {
	Rows        []ReferralPayoutRequest `json:"rows"`
	Count       int                     `json:"count"`
	CurrentPage int                     `json:"currentPage"`
	TotalPages  int                     `json:"totalPages"`
}

// PayoutFilter narrows and pages the admin listing. Zero values are omitted.
type PayoutFilter struct {
	Status    PayoutStatus
	UserID    int64
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // ASC or DESC
}

// ProcessPayoutInput is the admin decision on a pending request.
type ProcessPayoutInput struct {
	NewStatus  PayoutStatus `json:"newStatus"`
	AdminNotes string       `json:"adminNotes,omitempty"`
}
