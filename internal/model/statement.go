package model

import (
	"encoding/json"
	"time"
)

// ParseStatus represents the processing state of an uploaded statement.
type ParseStatus string

// Statement parse statuses. A statement moves pending -> processing ->
// completed, or drops to failed from either active state.
const (
	ParseStatusPending    ParseStatus = "pending"
	ParseStatusProcessing ParseStatus = "processing"
	ParseStatusCompleted  ParseStatus = "completed"
	ParseStatusFailed     ParseStatus = "failed"
)

// ValidParseStatus reports whether s is a known parse status.
func ValidParseStatus(s ParseStatus) bool {
	switch s {
	case ParseStatusPending, ParseStatusProcessing, ParseStatusCompleted, ParseStatusFailed:
		return true
	}
	return false
}

// Statement represents one uploaded broker document. It is created on upload
// and mutated only by the job runner (status and parse payload).
type Statement struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Broker          string          `json:"broker"`
	StatementDate   *time.Time      `json:"statementDate,omitempty"`
	DocumentType    DocumentType    `json:"documentType,omitempty"`
	DocumentSubType string          `json:"documentSubType,omitempty"`
	FileName        string          `json:"fileName"`
	FilePath        string          `json:"-"`
	ParseStatus     ParseStatus     `json:"parseStatus"`
	ParsedData      json.RawMessage `json:"parsedData,omitempty"`
	ParsedHoldings  json.RawMessage `json:"parsedHoldings,omitempty"`
	Error           string          `json:"error,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// StatementSummary is the list-view projection of a statement. It carries no
// parsed payload.
type StatementSummary struct {
	ID              string       `json:"id"`
	Broker          string       `json:"broker"`
	StatementDate   *time.Time   `json:"statementDate,omitempty"`
	DocumentType    DocumentType `json:"documentType,omitempty"`
	DocumentSubType string       `json:"documentSubType,omitempty"`
	ParseStatus     ParseStatus  `json:"parseStatus"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// UploadResult is the response payload for a statement upload.
type UploadResult struct {
	ID      string      `json:"id"`
	Message string      `json:"message"`
	Status  ParseStatus `json:"status"`
}
