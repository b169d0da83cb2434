package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaderboardPrizeType selects how ranked places are rewarded.
type LeaderboardPrizeType string

const (
	LeaderboardPrizeMoney    LeaderboardPrizeType = "money"
	LeaderboardPrizePhysical LeaderboardPrizeType = "physical"
)

// PlacePrize is the reward for one rank: a money amount or a prize reference,
// depending on the settings' prize type.
type PlacePrize struct {
	MoneyAmount   *decimal.Decimal `json:"moneyAmount,omitempty"`
	RafflePrizeID *int64           `json:"rafflePrizeId,omitempty"`
	Prize         *RafflePrize     `json:"raffle_prize,omitempty"`
}

// LeaderboardSettings is the single active prize-distribution configuration,
// replaced wholesale on save. Keys of PlacePrizes are place numbers.
type LeaderboardSettings struct {
	ID             int64                 `json:"id,omitempty"`
	EndDate        *time.Time            `json:"endDate,omitempty"`
	PrizeType      LeaderboardPrizeType  `json:"prizeType"`
	TotalMoneyPool decimal.Decimal       `json:"totalMoneyPool,omitempty"`
	PlacePrizes    map[string]PlacePrize `json:"placePrizes"`
}

// LeaderboardEntry is one scored row of the competition standings.
type LeaderboardEntry struct {
	Place    int    `json:"place"`
	UserID   int64  `json:"userId"`
	Username string `json:"username,omitempty"`
	Score    int64  `json:"score"`
}
