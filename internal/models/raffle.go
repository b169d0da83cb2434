package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RaffleStatus is the server-owned lifecycle state of a raffle.
type RaffleStatus string

const (
	RaffleStatusPending   RaffleStatus = "pending"
	RaffleStatusActive    RaffleStatus = "active"
	RaffleStatusCompleted RaffleStatus = "completed"
)

// RaffleWinner is the public slice of the winning user.
type RaffleWinner struct {
	ID         int64  `json:"id"`
	Username   string `json:"username,omitempty"`
	TelegramID int64  `json:"telegramId,omitempty"`
}

// Raffle is a snapshot of a draw. All transitions happen server-side; the
// panel only reads snapshots and issues commands against the current one.
type Raffle struct {
	ID                  int64         `json:"id"`
	Status              RaffleStatus  `json:"status"`
	StartTime           time.Time     `json:"startTime"`
	EndTime             *time.Time    `json:"endTime,omitempty"`
	Prize               string        `json:"prize,omitempty"`
	WinnerUserID        *int64        `json:"winnerUserId,omitempty"`
	TotalTickets        int           `json:"totalTickets"`
	TicketThreshold     int           `json:"ticketThreshold,omitempty"`
	RaffleDuration      int           `json:"raffleDuration,omitempty"`
	ThresholdReachedAt  *time.Time    `json:"thresholdReachedAt,omitempty"`
	TimerActive         bool          `json:"timerActive"`
	WinnerChance        *float64      `json:"winnerChance,omitempty"`
	WinningTicketNumber *int          `json:"winningTicketNumber,omitempty"`
	Winner              *RaffleWinner `json:"winner,omitempty"`
	RafflePrize         *RafflePrize  `json:"raffle_prize,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// RecentParticipant is a row of the current raffle's activity feed.
type RecentParticipant struct {
	UserID            int64     `json:"userId"`
	Username          string    `json:"username,omitempty"`
	LastParticipation time.Time `json:"lastParticipation"`
}

// CurrentRaffle is the composite snapshot the current-raffle page renders.
type CurrentRaffle struct {
	Raffle             Raffle              `json:"raffle"`
	TotalTickets       int                 `json:"totalTickets"`
	TotalParticipants  int                 `json:"totalParticipants"`
	RecentParticipants []RecentParticipant `json:"recentParticipants,omitempty"`
}

// RaffleSettingsInput updates the countdown parameters of the current raffle.
type RaffleSettingsInput struct {
	TicketThreshold *int `json:"ticketThreshold,omitempty"`
	RaffleDuration  *int `json:"raffleDuration,omitempty"`
}

// RafflePrize is a prize template assignable to raffles and leaderboard places.
type RafflePrize struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description,omitempty"`
	MediaFile   *MediaFile      `json:"media_file,omitempty"`
}

// RaffleTicketPackage is a purchasable bundle of raffle tickets.
type RaffleTicketPackage struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	TicketCount int             `json:"ticketCount"`
	Price       decimal.Decimal `json:"price"`
}

// TicketPackageInput is the create/update payload, the entity without its id.
type TicketPackageInput struct {
	Name        string          `json:"name"`
	TicketCount int             `json:"ticketCount"`
	Price       decimal.Decimal `json:"price"`
}
