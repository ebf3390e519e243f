package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

// PnLRepository provides data access methods for the pnl_record table.
type PnLRepository struct {
	db *sql.DB
}

// NewPnLRepository creates a new PnLRepository with the provided database connection.
func NewPnLRepository(db *sql.DB) *PnLRepository {
	return &PnLRepository{db: db}
}

// Create inserts a new P&L record.
func (r *PnLRepository) Create(p *model.PnLRecord) error {
	query := `
		INSERT INTO pnl_record (
			id, user_id, statement_id, period_type, period_start,
			realised_pnl, unrealised_pnl, dividend_income, intraday_pnl, fno_pnl,
			total_charges, total_pnl, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	p.CreatedAt = now

	_, err := r.db.Exec(query,
		p.ID, p.UserID, p.StatementID, string(p.PeriodType),
		p.PeriodStart.Format("2006-01-02"),
		p.RealisedPnL, p.UnrealisedPnL, p.DividendIncome, p.IntradayPnL, p.FnoPnL,
		p.TotalCharges, p.TotalPnL, now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert pnl record: %w", err)
	}
	return nil
}

// List retrieves all P&L records for a user ordered by period start.
func (r *PnLRepository) List(userID string) ([]model.PnLRecord, error) {
	query := `
		SELECT id, user_id, statement_id, period_type, period_start,
			realised_pnl, unrealised_pnl, dividend_income, intraday_pnl, fno_pnl,
			total_charges, total_pnl, created_at
		FROM pnl_record
		WHERE user_id = ?
		ORDER BY period_start ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pnl_record table: %w", err)
	}
	defer rows.Close()

	records := []model.PnLRecord{}
	for rows.Next() {
		var p model.PnLRecord
		var statementID sql.NullString
		var periodStartStr, createdAtStr string

		err := rows.Scan(
			&p.ID, &p.UserID, &statementID, &p.PeriodType, &periodStartStr,
			&p.RealisedPnL, &p.UnrealisedPnL, &p.DividendIncome, &p.IntradayPnL, &p.FnoPnL,
			&p.TotalCharges, &p.TotalPnL, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pnl_record table results: %w", err)
		}

		p.StatementID = statementID.String
		if p.PeriodStart, err = ParseTime(periodStartStr); err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		if p.CreatedAt, err = ParseTime(createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		records = append(records, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pnl_record table: %w", err)
	}
	return records, nil
}
