package models

import "github.com/shopspring/decimal"

// Case is a purchasable loot-box container. Items are nested; their
// probabilities are weighted percentages summing to at most 100 per case,
// which the backend enforces and the panel re-checks as a UX guard.
type Case struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	MediaFile *MediaFile      `json:"media_file,omitempty"`
	Items     []CaseItem      `json:"case_items,omitempty"`
}

// CaseItem is one drawable entry of a case.
type CaseItem struct {
	ID          int64           `json:"id"`
	CaseID      int64           `json:"caseId"`
	Name        string          `json:"name"`
	Value       decimal.Decimal `json:"value"`
	Probability float64         `json:"probability"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	MediaFile   *MediaFile      `json:"media_file,omitempty"`
}

// CaseStats aggregates opening activity across cases. The endpoint's shape
// is loose; known keys are decoded, the rest is kept in Extra.
type CaseStats struct {
	TotalCases    int            `mapstructure:"totalCases"`
	TotalOpenings int            `mapstructure:"totalOpenings"`
	UniqueUsers   int            `mapstructure:"uniqueUsers"`
	ByCase        []CaseOpenStat `mapstructure:"byCase"`
	Extra         map[string]any `mapstructure:",remain"`
}

// CaseOpenStat is the per-case row of the stats endpoint.
type CaseOpenStat struct {
	CaseID   int64  `mapstructure:"caseId"`
	Name     string `mapstructure:"name"`
	Openings int    `mapstructure:"openings"`
}

// GiveCaseInput grants cases to a user directly.
type GiveCaseInput struct {
	UserID   int64 `json:"userId"`
	CaseID   int64 `json:"caseId"`
	Quantity int   `json:"quantity"`
}
