package validation

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/api/request"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

// ValidUploadExtension contains the accepted statement file extensions.
var ValidUploadExtension = map[string]bool{
	".pdf": true, ".xlsx": true,
}

// ValidateUploadStatement validates a statement upload request.
// The document type may be empty here; the service infers it from the
// filename before taxonomy validation.
//
// Checked fields:
//   - fileName: required, extension must be .pdf or .xlsx
//   - statementDate: YYYY-MM-DD format if provided
//   - documentType: must be a known document type if provided
//   - documentSubType: must belong to the document type if provided
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateUploadStatement(req request.UploadStatementRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.FileName) == "" {
		errors["file"] = "file is required"
	} else {
		ext := strings.ToLower(filepath.Ext(req.FileName))
		if !ValidUploadExtension[ext] {
			errors["file"] = fmt.Sprintf("unsupported file type: %s", ext)
		}
	}

	if req.StatementDate != "" {
		if _, err := time.Parse("2006-01-02", req.StatementDate); err != nil {
			errors["statementDate"] = err.Error()
		}
	}

	if req.DocumentType != "" {
		docType := model.DocumentType(req.DocumentType)
		if !model.ValidDocumentType(docType) {
			errors["documentType"] = fmt.Sprintf("invalid document type: %s", req.DocumentType)
		} else if !model.ValidSubType(docType, req.DocumentSubType) {
			errors["documentSubType"] = fmt.Sprintf("invalid sub-type for %s: %s", req.DocumentType, req.DocumentSubType)
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateStatementStatus validates a manual status override request.
func ValidateStatementStatus(req request.SetStatementStatusRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Status) == "" {
		errors["status"] = "status is required"
	} else if !model.ValidParseStatus(model.ParseStatus(req.Status)) {
		errors["status"] = fmt.Sprintf("invalid status: %s", req.Status)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
