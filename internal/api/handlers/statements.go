package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/api/request"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/api/response"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/apperrors"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/service"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/validation"
)

// StatementHandler handles HTTP requests for statement endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the statementService.
type StatementHandler struct {
	statementService *service.StatementService
	maxUploadBytes   int64
}

// NewStatementHandler creates a new StatementHandler with the provided service dependency.
func NewStatementHandler(statementService *service.StatementService, maxUploadBytes int64) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
		maxUploadBytes:   maxUploadBytes,
	}
}

// Upload handles POST requests to upload a broker statement for parsing.
// Accepts a multipart form with the statement file and optional metadata.
// The statement is stored and queued; parsing happens asynchronously.
//
// Endpoint: POST /api/statement/upload
// Form fields: file (required), user_id, broker, statement_date, document_type, document_sub_type
// Response: 202 Accepted with UploadResult
// Error: 400 Bad Request if the form, file type, or document type is invalid
// Error: 413 Request Entity Too Large if the file exceeds the size cap
// Error: 500 Internal Server Error if storage or queueing fails
func (h *StatementHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.RespondError(w, http.StatusRequestEntityTooLarge, apperrors.ErrFileTooLarge.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusBadRequest, "invalid multipart form", err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrFileMissing.Error(), err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "failed to read uploaded file", err.Error())
		return
	}

	req := request.UploadStatementRequest{
		UserID:          r.FormValue("user_id"),
		Broker:          r.FormValue("broker"),
		StatementDate:   r.FormValue("statement_date"),
		DocumentType:    r.FormValue("document_type"),
		DocumentSubType: r.FormValue("document_sub_type"),
		FileName:        header.Filename,
	}

	result, err := h.statementService.Upload(req, data)
	if err != nil {
		var validationErr *validation.Error
		switch {
		case errors.As(err, &validationErr),
			errors.Is(err, apperrors.ErrInvalidDocumentSubType),
			errors.Is(err, apperrors.ErrFileMissing):
			response.RespondError(w, http.StatusBadRequest, "upload rejected", err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to store statement", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusAccepted, result)
}

// Statements handles GET requests to list a user's statements.
// Returns summaries without parse payloads, newest first.
//
// Endpoint: GET /api/statement/?user_id=
// Response: 200 OK with array of StatementSummary
// Error: 500 Internal Server Error if retrieval fails
func (h *StatementHandler) Statements(w http.ResponseWriter, r *http.Request) {
	statements, err := h.statementService.List(userID(r))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve statements", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, statements)
}

// GetStatement handles GET requests to retrieve one statement by ID.
// Returns the full record including parse payload and holdings snapshot.
//
// Endpoint: GET /api/statement/{uuid}
// Response: 200 OK with Statement
// Error: 400 Bad Request if the statement ID is invalid (validated by middleware)
// Error: 404 Not Found if the statement does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *StatementHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	statementID := chi.URLParam(r, "uuid")

	stmt, err := h.statementService.Get(statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStatementNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStatementNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve statement", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, stmt)
}

// RetryStatement handles POST requests to re-run the parse pipeline for a
// statement. The statement returns to pending and is re-enqueued.
//
// Endpoint: POST /api/statement/{uuid}/retry
// Response: 202 Accepted with UploadResult
// Error: 400 Bad Request if the statement ID is invalid (validated by middleware)
// Error: 404 Not Found if the statement does not exist
// Error: 500 Internal Server Error if re-queueing fails
func (h *StatementHandler) RetryStatement(w http.ResponseWriter, r *http.Request) {
	statementID := chi.URLParam(r, "uuid")

	result, err := h.statementService.Retry(statementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStatementNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStatementNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to retry statement", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusAccepted, result)
}

// SetStatementStatus handles PUT requests to manually override a statement's
// parse status.
//
// Endpoint: PUT /api/statement/{uuid}/status
// Request Body: SetStatementStatusRequest {status}
// Response: 200 OK
// Error: 400 Bad Request if the statement ID or status value is invalid
// Error: 404 Not Found if the statement does not exist
// Error: 500 Internal Server Error if the update fails
func (h *StatementHandler) SetStatementStatus(w http.ResponseWriter, r *http.Request) {
	statementID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.SetStatementStatusRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.statementService.SetStatus(statementID, req); err != nil {
		var validationErr *validation.Error
		switch {
		case errors.As(err, &validationErr):
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		case errors.Is(err, apperrors.ErrStatementNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStatementNotFound.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update statement status", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// DocumentTypes handles GET requests for the document-type taxonomy.
//
// Endpoint: GET /api/statement/document-types
// Response: 200 OK with array of DocumentTypeEntry
func (h *StatementHandler) DocumentTypes(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.statementService.Catalog())
}
