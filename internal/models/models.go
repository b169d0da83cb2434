// Package models holds the plain records mirroring backend rows. The panel
// keeps no invariants on them beyond "last fetched snapshot"; the backend is
// the authority for every business rule.
package models

import "github.com/shopspring/decimal"

func init() {
	// The backend speaks plain JSON numbers for money fields.
	decimal.MarshalJSONWithoutQuotes = true
}

// MediaFile describes an uploaded image or Lottie animation asset.
type MediaFile struct {
	ID           int64  `json:"id"`
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName,omitempty"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	Bucket       string `json:"bucket,omitempty"`
	URL          string `json:"url"`
	EntityType   string `json:"entityType,omitempty"`
	EntityID     int64  `json:"entityId,omitempty"`
}

// IsAnimation reports whether the asset is a Lottie JSON document rather
// than a bitmap image.
func (m *MediaFile) IsAnimation() bool {
	return m != nil && m.MimeType == "application/json"
}
