package model

import "time"

// TransactionType is the normalized direction of a trade transaction.
type TransactionType string

// Normalized transaction types.
const (
	TransactionTypeBuy  TransactionType = "buy"
	TransactionTypeSell TransactionType = "sell"
)

// AssetType distinguishes stock transactions from mutual fund transactions.
type AssetType string

// Asset types.
const (
	AssetTypeStocks AssetType = "stocks"
	AssetTypeMf     AssetType = "mf"
)

// Transaction represents one buy or sell event parsed from a statement.
// Rows are created fresh per parse; there is no deduplication across repeated
// uploads of the same statement.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	StatementID string          `json:"statementId,omitempty"`
	Type        TransactionType `json:"type"`
	AssetType   AssetType       `json:"assetType"`
	Symbol      string          `json:"symbol"`
	Name        string          `json:"name,omitempty"`
	Quantity    float64         `json:"quantity"`
	Price       float64         `json:"price"`
	Amount      float64         `json:"amount"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
