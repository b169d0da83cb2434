package models

import "time"

// UserPrizeStatus tracks delivery of a won prize.
type UserPrizeStatus string

const (
	UserPrizeStatusRequested UserPrizeStatus = "requested"
	UserPrizeStatusConfirmed UserPrizeStatus = "confirmed"
)

// UserPrize links a won prize to its raffle and user. Rows leave the
// "requested" list once an admin confirms delivery.
type UserPrize struct {
	ID       int64           `json:"id"`
	RaffleID int64           `json:"raffleId"`
	UserID   int64           `json:"userId,omitempty"`
	Status   UserPrizeStatus `json:"status"`
	WinDate  time.Time       `json:"winDate"`
	Raffle   *Raffle         `json:"raffle,omitempty"`
	Prize    *RafflePrize    `json:"raffle_prize,omitempty"`
	User     *UserInfo       `json:"user,omitempty"`
}
