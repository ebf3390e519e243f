package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/classify"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/filestore"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/quotes"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/repository"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/service"
)

// NopQueue is a Queue that records enqueued statement IDs without running
// anything. Tests drive processing explicitly.
type NopQueue struct {
	Enqueued []string
}

// Enqueue records the statement ID.
func (q *NopQueue) Enqueue(statementID string) {
	q.Enqueued = append(q.Enqueued, statementID)
}

// NewTestFileStore creates an encrypted file store under a test temp
// directory with an ephemeral key.
func NewTestFileStore(t *testing.T) *filestore.Store {
	t.Helper()

	store, err := filestore.New(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Failed to create test file store: %v", err)
	}
	return store
}

// NewTestStatementService creates a StatementService with a temp-dir file
// store and the embedded classifier rules. The queue is injectable so tests
// control when parsing runs.
func NewTestStatementService(t *testing.T, db *sql.DB, queue service.Queue) *service.StatementService {
	t.Helper()

	classifier, err := classify.New()
	if err != nil {
		t.Fatalf("Failed to load classifier rules: %v", err)
	}

	return service.NewStatementService(
		repository.NewStatementRepository(db),
		NewTestFileStore(t),
		classifier,
		queue,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(repository.NewTransactionRepository(db))
}

func NewTestPnLService(t *testing.T, db *sql.DB) *service.PnLService {
	t.Helper()

	return service.NewPnLService(repository.NewPnLRepository(db))
}

func NewTestTaxService(t *testing.T, db *sql.DB) *service.TaxService {
	t.Helper()

	return service.NewTaxService(repository.NewTaxRepository(db))
}

// NewTestHoldingService creates a HoldingService backed by the given quote
// client. Pass a MockQuoteClient to avoid real API calls.
func NewTestHoldingService(t *testing.T, db *sql.DB, quoteClient quotes.Client) *service.HoldingService {
	t.Helper()

	return service.NewHoldingService(repository.NewHoldingRepository(db), quoteClient)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeISIN generates a realistic ISIN code for testing.
//
// Example usage:
//
//	isin := testutil.MakeISIN("IN")
//	// Returns: "IN1A2B3C4D5E"
func MakeISIN(prefix string) string {
	if prefix == "" {
		prefix = "IN"
	}
	return prefix + randomAlphanumeric(10)
}

// MakeSymbol generates a stock ticker symbol for testing.
//
// Example usage:
//
//	symbol := testutil.MakeSymbol("RELI")
//	// Returns: "RELI1A2B"
func MakeSymbol(base string) string {
	if base == "" {
		base = "TEST"
	}
	return base + randomAlphanumeric(4)
}

// MakeUserID generates a unique user ID for testing.
func MakeUserID() string {
	return "user-" + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
