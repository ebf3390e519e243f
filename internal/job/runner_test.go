package job

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/filestore"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/parser"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/reconcile"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/repository"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/testutil"
)

// stubExtractor returns canned content regardless of the file on disk.
type stubExtractor struct {
	text string
	rows [][]string
}

func (s stubExtractor) PDFText(string) string      { return s.text }
func (s stubExtractor) XLSXRows(string) [][]string { return s.rows }

func newTestRunner(db *sql.DB, store *filestore.Store, ex Extractor) *Runner {
	engine := reconcile.NewEngine(
		repository.NewHoldingRepository(db),
		repository.NewPnLRepository(db),
		repository.NewTaxRepository(db),
		repository.NewTransactionRepository(db),
	)
	return NewRunner(repository.NewStatementRepository(db), store, ex, parser.NewRegistry(), engine)
}

func savedStatement(t *testing.T, db *sql.DB, store *filestore.Store, fileName string, userID string) model.Statement {
	t.Helper()

	ext := fileName[strings.LastIndex(fileName, "."):]
	path, err := store.Save([]byte("statement content"), ext)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	return testutil.NewStatement().
		WithUserID(userID).
		WithDocumentType(model.DocumentTypeHoldings, "").
		WithFileName(fileName).
		WithFilePath(path).
		Build(t, db)
}

func TestRunnerProcessCompletes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := testutil.NewTestFileStore(t)
	userID := testutil.MakeUserID()

	ex := stubExtractor{rows: [][]string{
		{"Stock Name", "ISIN", "Quantity", "Average Price", "Closing Price"},
		{"Reliance Industries", "INE002A01018", "10", "2,450.50", "2,800.00"},
	}}
	runner := newTestRunner(db, store, ex)

	stmt := savedStatement(t, db, store, "Stocks_Holdings_2024.xlsx", userID)

	if err := runner.Process(stmt.ID); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	stored, err := repository.NewStatementRepository(db).GetByID(stmt.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.ParseStatus != model.ParseStatusCompleted {
		t.Errorf("Expected completed status, got %q", stored.ParseStatus)
	}
	if len(stored.ParsedData) == 0 {
		t.Error("Expected a parse payload on the statement")
	}
	if len(stored.ParsedHoldings) == 0 {
		t.Error("Expected a holdings snapshot on the statement")
	}

	holding, err := repository.NewHoldingRepository(db).GetBySymbol(userID, "RELIANCE_INDUSTRIES")
	if err != nil {
		t.Fatalf("GetBySymbol failed: %v", err)
	}
	if holding == nil {
		t.Fatal("Expected the reconciled holding to exist")
	}
	if holding.Quantity != 10 || holding.AvgPrice != 2450.50 {
		t.Errorf("Unexpected holding figures: %+v", holding)
	}
}

func TestRunnerProcessUnsupportedExtensionFails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := testutil.NewTestFileStore(t)

	runner := newTestRunner(db, store, stubExtractor{})
	stmt := savedStatement(t, db, store, "statement.txt", testutil.MakeUserID())

	if err := runner.Process(stmt.ID); err == nil {
		t.Fatal("Expected Process to fail for an unsupported extension")
	}

	stored, err := repository.NewStatementRepository(db).GetByID(stmt.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.ParseStatus != model.ParseStatusFailed {
		t.Errorf("Expected failed status, got %q", stored.ParseStatus)
	}
	if !strings.Contains(stored.Error, "unsupported file type") {
		t.Errorf("Expected an unsupported file type error, got %q", stored.Error)
	}
}

func TestRunnerProcessEmptyContentCompletes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := testutil.NewTestFileStore(t)

	// An unreadable document degrades to empty content, never to an error.
	runner := newTestRunner(db, store, stubExtractor{})
	stmt := savedStatement(t, db, store, "Holdings_Statement.pdf", testutil.MakeUserID())

	if err := runner.Process(stmt.ID); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	stored, err := repository.NewStatementRepository(db).GetByID(stmt.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.ParseStatus != model.ParseStatusCompleted {
		t.Errorf("Expected completed status, got %q", stored.ParseStatus)
	}
	testutil.AssertRowCount(t, db, "holding", 0)
}

func TestRunnerRequeueStuck(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := testutil.NewTestFileStore(t)
	runner := newTestRunner(db, store, stubExtractor{})

	stuck := testutil.NewStatement().
		WithParseStatus(model.ParseStatusProcessing).
		WithUpdatedAt(time.Now().UTC().Add(-2 * time.Hour)).
		Build(t, db)
	fresh := testutil.NewStatement().
		WithParseStatus(model.ParseStatusProcessing).
		WithUpdatedAt(time.Now().UTC()).
		Build(t, db)

	runner.RequeueStuck(time.Hour)

	select {
	case id := <-runner.jobs:
		if id != stuck.ID {
			t.Errorf("Expected stuck statement %s re-queued, got %s", stuck.ID, id)
		}
	default:
		t.Fatal("Expected a re-queued statement on the job channel")
	}

	select {
	case id := <-runner.jobs:
		t.Errorf("Unexpected extra re-queued statement %s", id)
	default:
	}

	repo := repository.NewStatementRepository(db)
	reStuck, err := repo.GetByID(stuck.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if reStuck.ParseStatus != model.ParseStatusPending {
		t.Errorf("Expected stuck statement reset to pending, got %q", reStuck.ParseStatus)
	}

	untouched, err := repo.GetByID(fresh.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if untouched.ParseStatus != model.ParseStatusProcessing {
		t.Errorf("Expected fresh statement untouched, got %q", untouched.ParseStatus)
	}
}
