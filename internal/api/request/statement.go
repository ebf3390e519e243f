package request

// UploadStatementRequest carries the multipart form fields of a statement
// upload. File content is passed separately.
type UploadStatementRequest struct {
	UserID          string // UserID is the owning user; defaults to "default" when omitted.
	Broker          string // Broker is a free-text broker label.
	StatementDate   string // StatementDate is the statement period date in YYYY-MM-DD format. Optional.
	DocumentType    string // DocumentType selects the parser; inferred from the filename when omitted.
	DocumentSubType string // DocumentSubType refines the parser choice. Optional.
	FileName        string // FileName is the original upload filename.
}

// SetStatementStatusRequest is the request body for a manual status override.
type SetStatementStatusRequest struct {
	Status string `json:"status"` // Status must be one of: pending, processing, completed, failed.
}
