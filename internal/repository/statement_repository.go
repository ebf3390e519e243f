package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/apperrors"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

// StatementRepository provides data access methods for the statement table.
// It handles creating statements, status transitions, and parse payloads.
type StatementRepository struct {
	db *sql.DB
}

// NewStatementRepository creates a new StatementRepository with the provided database connection.
func NewStatementRepository(db *sql.DB) *StatementRepository {
	return &StatementRepository{db: db}
}

// Create inserts a new statement row.
func (r *StatementRepository) Create(s *model.Statement) error {
	query := `
		INSERT INTO statement (
			id, user_id, broker, statement_date, document_type, document_sub_type,
			file_name, file_path, parse_status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var dateStr sql.NullString
	if s.StatementDate != nil {
		dateStr = sql.NullString{String: s.StatementDate.Format("2006-01-02"), Valid: true}
	}

	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := r.db.Exec(query,
		s.ID, s.UserID, s.Broker, dateStr, string(s.DocumentType), s.DocumentSubType,
		s.FileName, s.FilePath, string(s.ParseStatus),
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert statement: %w", err)
	}
	return nil
}

// GetByID retrieves one statement including its parse payload.
func (r *StatementRepository) GetByID(id string) (*model.Statement, error) {
	query := `
		SELECT id, user_id, broker, statement_date, document_type, document_sub_type,
			file_name, file_path, parse_status, parsed_data, parsed_holdings, error,
			created_at, updated_at
		FROM statement
		WHERE id = ?
	`

	var s model.Statement
	var dateStr, docType, subType, parsedData, parsedHoldings, errMsg sql.NullString
	var createdAtStr, updatedAtStr string

	err := r.db.QueryRow(query, id).Scan(
		&s.ID, &s.UserID, &s.Broker, &dateStr, &docType, &subType,
		&s.FileName, &s.FilePath, &s.ParseStatus, &parsedData, &parsedHoldings, &errMsg,
		&createdAtStr, &updatedAtStr,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrStatementNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan statement: %w", err)
	}

	if dateStr.Valid {
		date, err := ParseTime(dateStr.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		s.StatementDate = &date
	}
	s.DocumentType = model.DocumentType(docType.String)
	s.DocumentSubType = subType.String
	if parsedData.Valid {
		s.ParsedData = []byte(parsedData.String)
	}
	if parsedHoldings.Valid {
		s.ParsedHoldings = []byte(parsedHoldings.String)
	}
	s.Error = errMsg.String

	if s.CreatedAt, err = ParseTime(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}
	if s.UpdatedAt, err = ParseTime(updatedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	return &s, nil
}

// List retrieves statement summaries for a user, newest first. No parse
// payload is included in the list view.
func (r *StatementRepository) List(userID string) ([]model.StatementSummary, error) {
	query := `
		SELECT id, broker, statement_date, document_type, document_sub_type,
			parse_status, created_at
		FROM statement
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query statement table: %w", err)
	}
	defer rows.Close()

	summaries := []model.StatementSummary{}
	for rows.Next() {
		var s model.StatementSummary
		var dateStr, docType, subType sql.NullString
		var createdAtStr string

		err := rows.Scan(&s.ID, &s.Broker, &dateStr, &docType, &subType, &s.ParseStatus, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statement table results: %w", err)
		}

		if dateStr.Valid {
			date, err := ParseTime(dateStr.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse date: %w", err)
			}
			s.StatementDate = &date
		}
		s.DocumentType = model.DocumentType(docType.String)
		s.DocumentSubType = subType.String
		if s.CreatedAt, err = ParseTime(createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating statement table: %w", err)
	}
	return summaries, nil
}

// UpdateStatus transitions the statement's parse status. The error message
// is cleared on non-failed transitions.
func (r *StatementRepository) UpdateStatus(id string, status model.ParseStatus, errMsg string) error {
	query := `
		UPDATE statement
		SET parse_status = ?, error = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, string(status), errMsg, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to update statement status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check statement update: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStatementNotFound
	}
	return nil
}

// SetResult persists the parse payload and denormalized holdings snapshot
// and marks the statement completed.
func (r *StatementRepository) SetResult(id string, parsedData, parsedHoldings []byte) error {
	query := `
		UPDATE statement
		SET parse_status = ?, parsed_data = ?, parsed_holdings = ?, error = '', updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		string(model.ParseStatusCompleted), string(parsedData), string(parsedHoldings),
		time.Now().UTC().Format(time.RFC3339), id,
	)
	if err != nil {
		return fmt.Errorf("failed to store parse result: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check parse result update: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStatementNotFound
	}
	return nil
}

// ListStuckProcessing returns IDs of statements that have been in processing
// since before the cutoff. Used by the re-queue sweeper.
func (r *StatementRepository) ListStuckProcessing(before time.Time) ([]string, error) {
	query := `
		SELECT id
		FROM statement
		WHERE parse_status = ? AND updated_at < ?
	`

	rows, err := r.db.Query(query, string(model.ParseStatusProcessing), before.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("failed to query stuck statements: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan stuck statement id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stuck statements: %w", err)
	}
	return ids, nil
}
