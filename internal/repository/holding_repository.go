package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
// Symbol uniqueness per user is enforced by the reconciliation engine
// looking up before create, not by a database constraint.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// GetBySymbol retrieves a user's holding by symbol. Returns (nil, nil) when
// no holding exists.
func (r *HoldingRepository) GetBySymbol(userID, symbol string) (*model.Holding, error) {
	query := `
		SELECT id, user_id, symbol, isin, name, quantity, avg_price, current_price,
			holding_type, source, created_at, updated_at
		FROM holding
		WHERE user_id = ? AND symbol = ?
	`

	h, err := scanHolding(r.db.QueryRow(query, userID, symbol))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Create inserts a new holding row.
func (r *HoldingRepository) Create(h *model.Holding) error {
	query := `
		INSERT INTO holding (
			id, user_id, symbol, isin, name, quantity, avg_price, current_price,
			holding_type, source, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now

	_, err := r.db.Exec(query,
		h.ID, h.UserID, h.Symbol, h.ISIN, h.Name, h.Quantity, h.AvgPrice,
		nullFloat(h.CurrentPrice), string(h.HoldingType), string(h.Source),
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}
	return nil
}

// Update overwrites the mutable fields of an existing holding.
func (r *HoldingRepository) Update(h *model.Holding) error {
	query := `
		UPDATE holding
		SET isin = ?, name = ?, quantity = ?, avg_price = ?, current_price = ?,
			holding_type = ?, source = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		h.ISIN, h.Name, h.Quantity, h.AvgPrice, nullFloat(h.CurrentPrice),
		string(h.HoldingType), string(h.Source),
		time.Now().UTC().Format(time.RFC3339), h.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}
	return nil
}

// UpdateCurrentPrice sets only the current price of a holding.
func (r *HoldingRepository) UpdateCurrentPrice(id string, price float64) error {
	query := `
		UPDATE holding
		SET current_price = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, price, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to update holding price: %w", err)
	}
	return nil
}

// List retrieves all holdings for a user ordered by symbol.
func (r *HoldingRepository) List(userID string) ([]model.Holding, error) {
	return r.list(userID, "")
}

// ListByType retrieves a user's holdings of one holding type.
func (r *HoldingRepository) ListByType(userID string, holdingType model.HoldingType) ([]model.Holding, error) {
	return r.list(userID, string(holdingType))
}

func (r *HoldingRepository) list(userID, holdingType string) ([]model.Holding, error) {
	query := `
		SELECT id, user_id, symbol, isin, name, quantity, avg_price, current_price,
			holding_type, source, created_at, updated_at
		FROM holding
		WHERE user_id = ?
	`
	args := []any{userID}
	if holdingType != "" {
		query += ` AND holding_type = ?`
		args = append(args, holdingType)
	}
	query += ` ORDER BY symbol ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, *h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}
	return holdings, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanHolding(row rowScanner) (*model.Holding, error) {
	var h model.Holding
	var isin, name sql.NullString
	var currentPrice sql.NullFloat64
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&h.ID, &h.UserID, &h.Symbol, &isin, &name, &h.Quantity, &h.AvgPrice,
		&currentPrice, &h.HoldingType, &h.Source, &createdAtStr, &updatedAtStr,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan holding table results: %w", err)
	}

	h.ISIN = isin.String
	h.Name = name.String
	if currentPrice.Valid {
		h.CurrentPrice = &currentPrice.Float64
	}
	if h.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}
	if h.UpdatedAt, err = ParseTime(updatedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}
	return &h, nil
}

// nullFloat converts an optional float into a nullable SQL value.
func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
