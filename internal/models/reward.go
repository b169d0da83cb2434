package models

import "github.com/shopspring/decimal"

// DailyReward is one slot of the 7-day login reward cycle.
type DailyReward struct {
	ID          int64  `json:"id,omitempty"`
	Day         int    `json:"day"`
	Reward      int    `json:"reward"`
	RewardType  string `json:"rewardType"`
	Description string `json:"description,omitempty"`
}

// Task is a completable mission rewarding attempts, tickets or balance.
type Task struct {
	ID          int64  `json:"id,omitempty"`
	Type        string `json:"type"`
	Reward      int    `json:"reward"`
	RewardType  string `json:"rewardType"`
	Description string `json:"description,omitempty"`
	TargetCount int    `json:"targetCount"`
}

// Product is a purchasable package of case-opening attempts.
type Product struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Attempts   int             `json:"attempts"`
	StarsPrice decimal.Decimal `json:"starsPrice"`
}

// ProductInput is the create/update payload, the entity without its id.
type ProductInput struct {
	Name       string          `json:"name"`
	Attempts   int             `json:"attempts"`
	StarsPrice decimal.Decimal `json:"starsPrice"`
}
