package model

import "time"

// HoldingType distinguishes equity positions from mutual fund positions.
type HoldingType string

// Holding types.
const (
	HoldingTypeEquity HoldingType = "equity"
	HoldingTypeMf     HoldingType = "mf"
)

// HoldingSource records where a holding originated.
type HoldingSource string

// Holding provenance values.
const (
	HoldingSourceManual HoldingSource = "manual"
	HoldingSourcePdf    HoldingSource = "pdf"
)

// Holding represents a user's position in one instrument. Uniqueness per
// user+symbol is enforced by upsert logic, not a database constraint.
type Holding struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	Symbol       string        `json:"symbol"`
	ISIN         string        `json:"isin,omitempty"`
	Name         string        `json:"name,omitempty"`
	Quantity     float64       `json:"quantity"`
	AvgPrice     float64       `json:"avgPrice"`
	CurrentPrice *float64      `json:"currentPrice,omitempty"`
	HoldingType  HoldingType   `json:"holdingType"`
	Source       HoldingSource `json:"source"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// PriceRefreshResult reports the outcome of a bulk current-price refresh.
// Success is true if at least one holding was updated.
type PriceRefreshResult struct {
	Success      bool                `json:"success"`
	TotalUpdated int                 `json:"totalUpdated"`
	TotalErrors  int                 `json:"totalErrors"`
	Errors       []PriceRefreshError `json:"errors,omitempty"`
}

// PriceRefreshError identifies a holding whose price lookup failed.
type PriceRefreshError struct {
	Symbol string `json:"symbol"`
	Error  string `json:"error"`
}
