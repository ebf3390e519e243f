package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

// TaxRepository provides data access methods for the tax_record table.
// One record exists per user and financial year (unique constraint).
type TaxRepository struct {
	db *sql.DB
}

// NewTaxRepository creates a new TaxRepository with the provided database connection.
func NewTaxRepository(db *sql.DB) *TaxRepository {
	return &TaxRepository{db: db}
}

// GetByYear retrieves a user's tax record for a financial year. Returns
// (nil, nil) when no record exists.
func (r *TaxRepository) GetByYear(userID, financialYear string) (*model.TaxRecord, error) {
	query := `
		SELECT id, user_id, financial_year, stcg, ltcg, intraday_gains,
			elss_deduction, notes, created_at, updated_at
		FROM tax_record
		WHERE user_id = ? AND financial_year = ?
	`

	var t model.TaxRecord
	var notes sql.NullString
	var createdAtStr, updatedAtStr string

	err := r.db.QueryRow(query, userID, financialYear).Scan(
		&t.ID, &t.UserID, &t.FinancialYear, &t.STCG, &t.LTCG, &t.IntradayGains,
		&t.ElssDeduction, &notes, &createdAtStr, &updatedAtStr,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan tax_record table results: %w", err)
	}

	t.Notes = notes.String
	if t.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}
	if t.UpdatedAt, err = ParseTime(updatedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}
	return &t, nil
}

// Create inserts a new tax record.
func (r *TaxRepository) Create(t *model.TaxRecord) error {
	query := `
		INSERT INTO tax_record (
			id, user_id, financial_year, stcg, ltcg, intraday_gains,
			elss_deduction, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.db.Exec(query,
		t.ID, t.UserID, t.FinancialYear, t.STCG, t.LTCG, t.IntradayGains,
		t.ElssDeduction, t.Notes, now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert tax record: %w", err)
	}
	return nil
}

// Update overwrites the amounts and notes of an existing tax record.
func (r *TaxRepository) Update(t *model.TaxRecord) error {
	query := `
		UPDATE tax_record
		SET stcg = ?, ltcg = ?, intraday_gains = ?, elss_deduction = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		t.STCG, t.LTCG, t.IntradayGains, t.ElssDeduction, t.Notes,
		time.Now().UTC().Format(time.RFC3339), t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update tax record: %w", err)
	}
	return nil
}

// List retrieves all tax records for a user ordered by financial year.
func (r *TaxRepository) List(userID string) ([]model.TaxRecord, error) {
	query := `
		SELECT id, user_id, financial_year, stcg, ltcg, intraday_gains,
			elss_deduction, notes, created_at, updated_at
		FROM tax_record
		WHERE user_id = ?
		ORDER BY financial_year ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax_record table: %w", err)
	}
	defer rows.Close()

	records := []model.TaxRecord{}
	for rows.Next() {
		var t model.TaxRecord
		var notes sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&t.ID, &t.UserID, &t.FinancialYear, &t.STCG, &t.LTCG, &t.IntradayGains,
			&t.ElssDeduction, &notes, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax_record table results: %w", err)
		}

		t.Notes = notes.String
		if t.CreatedAt, err = ParseTime(createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		if t.UpdatedAt, err = ParseTime(updatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		records = append(records, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tax_record table: %w", err)
	}
	return records, nil
}
