package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

// StatementBuilder provides a fluent interface for creating test statements.
//
// Example usage:
//
//	// Simple creation with defaults
//	stmt := testutil.NewStatement().Build(t, db)
//
//	// Customized statement
//	stmt := testutil.NewStatement().
//	    WithUserID("user-1").
//	    WithDocumentType(model.DocumentTypeHoldings, model.SubTypeStocks).
//	    WithParseStatus(model.ParseStatusProcessing).
//	    Build(t, db)
type StatementBuilder struct {
	ID              string
	UserID          string
	Broker          string
	StatementDate   *time.Time
	DocumentType    model.DocumentType
	DocumentSubType string
	FileName        string
	FilePath        string
	ParseStatus     model.ParseStatus
	UpdatedAt       time.Time
}

// NewStatement creates a StatementBuilder with sensible defaults.
func NewStatement() *StatementBuilder {
	return &StatementBuilder{
		ID:           MakeID(),
		UserID:       "default",
		Broker:       "Groww",
		DocumentType: model.DocumentTypeHoldings,
		FileName:     "Holdings_Statement_" + randomAlphanumeric(6) + ".xlsx",
		FilePath:     "/tmp/" + MakeID() + ".xlsx",
		ParseStatus:  model.ParseStatusPending,
		UpdatedAt:    time.Now().UTC(),
	}
}

// WithID sets a custom ID.
func (b *StatementBuilder) WithID(id string) *StatementBuilder {
	b.ID = id
	return b
}

// WithUserID sets the owning user.
func (b *StatementBuilder) WithUserID(userID string) *StatementBuilder {
	b.UserID = userID
	return b
}

// WithStatementDate sets the statement period date.
func (b *StatementBuilder) WithStatementDate(date time.Time) *StatementBuilder {
	b.StatementDate = &date
	return b
}

// WithDocumentType sets the document type and sub-type.
func (b *StatementBuilder) WithDocumentType(docType model.DocumentType, subType string) *StatementBuilder {
	b.DocumentType = docType
	b.DocumentSubType = subType
	return b
}

// WithFileName sets the original filename.
func (b *StatementBuilder) WithFileName(name string) *StatementBuilder {
	b.FileName = name
	return b
}

// WithFilePath sets the stored file path.
func (b *StatementBuilder) WithFilePath(path string) *StatementBuilder {
	b.FilePath = path
	return b
}

// WithParseStatus sets the parse status.
func (b *StatementBuilder) WithParseStatus(status model.ParseStatus) *StatementBuilder {
	b.ParseStatus = status
	return b
}

// WithUpdatedAt sets the updated timestamp. Useful for stuck-statement tests.
func (b *StatementBuilder) WithUpdatedAt(ts time.Time) *StatementBuilder {
	b.UpdatedAt = ts
	return b
}

// Build creates the statement in the database and returns it.
func (b *StatementBuilder) Build(t *testing.T, db *sql.DB) model.Statement {
	t.Helper()

	query := `
		INSERT INTO statement (id, user_id, broker, statement_date, document_type,
		                       document_sub_type, file_name, file_path, parse_status,
		                       created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var dateStr any
	if b.StatementDate != nil {
		dateStr = b.StatementDate.Format("2006-01-02")
	}

	now := time.Now().UTC()
	_, err := db.Exec(query,
		b.ID, b.UserID, b.Broker, dateStr, string(b.DocumentType), b.DocumentSubType,
		b.FileName, b.FilePath, string(b.ParseStatus),
		now.Format(time.RFC3339), b.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test statement: %v", err)
	}

	return model.Statement{
		ID:              b.ID,
		UserID:          b.UserID,
		Broker:          b.Broker,
		StatementDate:   b.StatementDate,
		DocumentType:    b.DocumentType,
		DocumentSubType: b.DocumentSubType,
		FileName:        b.FileName,
		FilePath:        b.FilePath,
		ParseStatus:     b.ParseStatus,
		CreatedAt:       now,
		UpdatedAt:       b.UpdatedAt,
	}
}

// HoldingBuilder provides a fluent interface for creating test holdings.
//
// Example usage:
//
//	holding := testutil.NewHolding().
//	    WithSymbol("RELIANCE").
//	    WithQuantity(10).
//	    Build(t, db)
type HoldingBuilder struct {
	ID           string
	UserID       string
	Symbol       string
	ISIN         string
	Name         string
	Quantity     float64
	AvgPrice     float64
	CurrentPrice *float64
	HoldingType  model.HoldingType
	Source       model.HoldingSource
}

// NewHolding creates a HoldingBuilder with sensible defaults.
func NewHolding() *HoldingBuilder {
	return &HoldingBuilder{
		ID:          MakeID(),
		UserID:      "default",
		Symbol:      MakeSymbol("TEST"),
		ISIN:        MakeISIN("IN"),
		Name:        "Test Holding " + randomAlphanumeric(4),
		Quantity:    10,
		AvgPrice:    100,
		HoldingType: model.HoldingTypeEquity,
		Source:      model.HoldingSourceManual,
	}
}

// WithUserID sets the owning user.
func (b *HoldingBuilder) WithUserID(userID string) *HoldingBuilder {
	b.UserID = userID
	return b
}

// WithSymbol sets the instrument symbol.
func (b *HoldingBuilder) WithSymbol(symbol string) *HoldingBuilder {
	b.Symbol = symbol
	return b
}

// WithQuantity sets the position quantity.
func (b *HoldingBuilder) WithQuantity(qty float64) *HoldingBuilder {
	b.Quantity = qty
	return b
}

// WithAvgPrice sets the position average price.
func (b *HoldingBuilder) WithAvgPrice(price float64) *HoldingBuilder {
	b.AvgPrice = price
	return b
}

// WithHoldingType sets the holding type.
func (b *HoldingBuilder) WithHoldingType(ht model.HoldingType) *HoldingBuilder {
	b.HoldingType = ht
	return b
}

// Build creates the holding in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	query := `
		INSERT INTO holding (id, user_id, symbol, isin, name, quantity, avg_price,
		                     current_price, holding_type, source, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var currentPrice any
	if b.CurrentPrice != nil {
		currentPrice = *b.CurrentPrice
	}

	now := time.Now().UTC()
	_, err := db.Exec(query,
		b.ID, b.UserID, b.Symbol, b.ISIN, b.Name, b.Quantity, b.AvgPrice,
		currentPrice, string(b.HoldingType), string(b.Source),
		now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return model.Holding{
		ID:           b.ID,
		UserID:       b.UserID,
		Symbol:       b.Symbol,
		ISIN:         b.ISIN,
		Name:         b.Name,
		Quantity:     b.Quantity,
		AvgPrice:     b.AvgPrice,
		CurrentPrice: b.CurrentPrice,
		HoldingType:  b.HoldingType,
		Source:       b.Source,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TaxRecordBuilder provides a fluent interface for creating test tax records.
type TaxRecordBuilder struct {
	ID            string
	UserID        string
	FinancialYear string
	STCG          float64
	LTCG          float64
	IntradayGains float64
	ElssDeduction float64
	Notes         string
}

// NewTaxRecord creates a TaxRecordBuilder with sensible defaults.
func NewTaxRecord() *TaxRecordBuilder {
	return &TaxRecordBuilder{
		ID:            MakeID(),
		UserID:        "default",
		FinancialYear: "2024-25",
		STCG:          1000,
		LTCG:          2000,
	}
}

// WithUserID sets the owning user.
func (b *TaxRecordBuilder) WithUserID(userID string) *TaxRecordBuilder {
	b.UserID = userID
	return b
}

// WithFinancialYear sets the financial year.
func (b *TaxRecordBuilder) WithFinancialYear(fy string) *TaxRecordBuilder {
	b.FinancialYear = fy
	return b
}

// WithAmounts sets all four tax figures.
func (b *TaxRecordBuilder) WithAmounts(stcg, ltcg, intraday, elss float64) *TaxRecordBuilder {
	b.STCG = stcg
	b.LTCG = ltcg
	b.IntradayGains = intraday
	b.ElssDeduction = elss
	return b
}

// Build creates the tax record in the database and returns it.
func (b *TaxRecordBuilder) Build(t *testing.T, db *sql.DB) model.TaxRecord {
	t.Helper()

	query := `
		INSERT INTO tax_record (id, user_id, financial_year, stcg, ltcg, intraday_gains,
		                        elss_deduction, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	_, err := db.Exec(query,
		b.ID, b.UserID, b.FinancialYear, b.STCG, b.LTCG, b.IntradayGains,
		b.ElssDeduction, b.Notes, now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test tax record: %v", err)
	}

	return model.TaxRecord{
		ID:            b.ID,
		UserID:        b.UserID,
		FinancialYear: b.FinancialYear,
		STCG:          b.STCG,
		LTCG:          b.LTCG,
		IntradayGains: b.IntradayGains,
		ElssDeduction: b.ElssDeduction,
		Notes:         b.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
