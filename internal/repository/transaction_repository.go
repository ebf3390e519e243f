package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

// TransactionRepository provides data access methods for the
// trade_transaction table. Rows are insert-only: reprocessing a statement
// creates new rows rather than merging.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a new transaction row.
func (r *TransactionRepository) Create(t *model.Transaction) error {
	query := `
		INSERT INTO trade_transaction (
			id, user_id, statement_id, type, asset_type, symbol, name,
			quantity, price, amount, date, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	t.CreatedAt = now

	_, err := r.db.Exec(query,
		t.ID, t.UserID, t.StatementID, string(t.Type), string(t.AssetType),
		t.Symbol, t.Name, t.Quantity, t.Price, t.Amount,
		t.Date.Format("2006-01-02"), t.Notes, now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// List retrieves all transactions for a user sorted by date ascending.
func (r *TransactionRepository) List(userID string) ([]model.Transaction, error) {
	query := `
		SELECT id, user_id, statement_id, type, asset_type, symbol, name,
			quantity, price, amount, date, notes, created_at
		FROM trade_transaction
		WHERE user_id = ?
		ORDER BY date ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}
	for rows.Next() {
		var t model.Transaction
		var statementID, name, notes sql.NullString
		var dateStr, createdAtStr string

		err := rows.Scan(
			&t.ID, &t.UserID, &statementID, &t.Type, &t.AssetType, &t.Symbol, &name,
			&t.Quantity, &t.Price, &t.Amount, &dateStr, &notes, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade_transaction table results: %w", err)
		}

		t.StatementID = statementID.String
		t.Name = name.String
		t.Notes = notes.String
		if t.Date, err = ParseTime(dateStr); err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		if t.CreatedAt, err = ParseTime(createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade_transaction table: %w", err)
	}
	return transactions, nil
}
