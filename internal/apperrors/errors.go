package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrStatementNotFound indicates that a statement with the given ID does not exist.
	ErrStatementNotFound = errors.New("statement not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrUnsupportedFileType indicates an upload with an extension other than .pdf or .xlsx.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrFileMissing indicates an upload request without a file part.
	ErrFileMissing = errors.New("no file provided")

	// ErrFileTooLarge indicates an upload exceeding the configured size cap.
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")

	// ErrInvalidDocumentSubType indicates a sub-type not declared for its parent type.
	ErrInvalidDocumentSubType = errors.New("invalid document sub-type")
)
