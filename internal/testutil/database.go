package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production database schema.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Statement table
		CREATE TABLE statement (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			broker VARCHAR(50) NOT NULL DEFAULT 'Groww',
			statement_date DATE,
			document_type VARCHAR(20),
			document_sub_type VARCHAR(30),
			file_name VARCHAR(255) NOT NULL,
			file_path VARCHAR(512) NOT NULL,
			parse_status VARCHAR(12) NOT NULL DEFAULT 'pending',
			parsed_data TEXT,
			parsed_holdings TEXT,
			error TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		-- Holding table
		CREATE TABLE holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			symbol VARCHAR(50) NOT NULL,
			isin VARCHAR(12),
			name VARCHAR(255),
			quantity REAL NOT NULL,
			avg_price REAL NOT NULL,
			current_price REAL,
			holding_type VARCHAR(10) NOT NULL,
			source VARCHAR(10) NOT NULL DEFAULT 'manual',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		-- P&L record table
		CREATE TABLE pnl_record (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			statement_id VARCHAR(36),
			period_type VARCHAR(10) NOT NULL,
			period_start DATE NOT NULL,
			realised_pnl REAL NOT NULL DEFAULT 0,
			unrealised_pnl REAL NOT NULL DEFAULT 0,
			dividend_income REAL NOT NULL DEFAULT 0,
			intraday_pnl REAL NOT NULL DEFAULT 0,
			fno_pnl REAL NOT NULL DEFAULT 0,
			total_charges REAL NOT NULL DEFAULT 0,
			total_pnl REAL NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);

		-- Tax record table
		CREATE TABLE tax_record (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			financial_year VARCHAR(10) NOT NULL,
			stcg REAL NOT NULL DEFAULT 0,
			ltcg REAL NOT NULL DEFAULT 0,
			intraday_gains REAL NOT NULL DEFAULT 0,
			elss_deduction REAL NOT NULL DEFAULT 0,
			notes TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			CONSTRAINT unique_user_financial_year UNIQUE (user_id, financial_year)
		);

		-- Trade transaction table
		CREATE TABLE trade_transaction (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			statement_id VARCHAR(36),
			type VARCHAR(4) NOT NULL,
			asset_type VARCHAR(10) NOT NULL,
			symbol VARCHAR(50) NOT NULL,
			name VARCHAR(255),
			quantity REAL NOT NULL,
			price REAL NOT NULL,
			amount REAL NOT NULL,
			date DATE NOT NULL,
			notes TEXT,
			created_at DATETIME NOT NULL
		);

		-- Indexes for performance
		CREATE INDEX idx_statement_user ON statement(user_id);
		CREATE INDEX idx_statement_status ON statement(parse_status);
		CREATE INDEX idx_holding_user_symbol ON holding(user_id, symbol);
		CREATE INDEX idx_pnl_record_user ON pnl_record(user_id);
		CREATE INDEX idx_trade_transaction_user ON trade_transaction(user_id);
	`

	_, err := db.Exec(schema)
	return err
}

// CleanDatabase truncates all tables.
// Useful for reusing the same database across multiple tests.
//
// Example usage:
//
//	func TestMultipleThings(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//
//	    t.Run("First test", func(t *testing.T) {
//	        // Create data
//	        testutil.CleanDatabase(t, db)  // Clean after
//	    })
//
//	    t.Run("Second test", func(t *testing.T) {
//	        // Fresh clean database
//	    })
//	}
func CleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	tables := []string{
		"trade_transaction",
		"tax_record",
		"pnl_record",
		"holding",
		"statement",
	}

	for _, table := range tables {
		//nolint:gosec // G202: Table names are from hardcoded slice, no SQL injection risk
		query := "DELETE FROM " + table
		if _, err := db.Exec(query); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// CountRows returns the number of rows in a table.
// Useful for assertions in tests.
//
// Example usage:
//
//	count := testutil.CountRows(t, db, "holding")
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM " + table
	err := db.QueryRow(query).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}

	return count
}

// AssertRowCount asserts that a table has the expected number of rows.
//
// Example usage:
//
//	testutil.AssertRowCount(t, db, "holding", 2)
func AssertRowCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()

	actual := CountRows(t, db, table)
	if actual != expected {
		t.Errorf("Expected %d rows in %s, got %d", expected, table, actual)
	}
}
