package service

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/api/request"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/apperrors"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/classify"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/filestore"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/repository"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/validation"
)

// DefaultUserID scopes records when the caller supplies no user.
const DefaultUserID = "default"

// DefaultBroker labels uploads when the caller names no broker.
const DefaultBroker = "Groww"

// Queue schedules statements for background processing.
type Queue interface {
	Enqueue(statementID string)
}

// StatementService handles statement upload, listing, and lifecycle
// operations. Parsing itself runs on the background job runner.
type StatementService struct {
	statementRepo *repository.StatementRepository
	store         *filestore.Store
	classifier    *classify.Classifier
	queue         Queue
}

// NewStatementService creates a new StatementService with the provided dependencies.
func NewStatementService(
	statementRepo *repository.StatementRepository,
	store *filestore.Store,
	classifier *classify.Classifier,
	queue Queue,
) *StatementService {
	return &StatementService{
		statementRepo: statementRepo,
		store:         store,
		classifier:    classifier,
		queue:         queue,
	}
}

// Upload validates the request, resolves the document type, stores the file
// encrypted, creates a pending statement, and enqueues it for parsing.
func (s *StatementService) Upload(req request.UploadStatementRequest, data []byte) (*model.UploadResult, error) {
	if err := validation.ValidateUploadStatement(req); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, apperrors.ErrFileMissing
	}

	// An unclassifiable filename leaves the statement typeless; the parse
	// registry falls back to the holdings parser for unknown types.
	docType := model.DocumentType(req.DocumentType)
	subType := req.DocumentSubType
	if docType == "" {
		docType, subType = s.classifier.Classify(req.FileName)
		if req.DocumentSubType != "" {
			subType = req.DocumentSubType
		}
	}
	if docType != "" && !model.ValidSubType(docType, subType) {
		return nil, fmt.Errorf("%w: %s/%s", apperrors.ErrInvalidDocumentSubType, docType, subType)
	}

	userID := req.UserID
	if userID == "" {
		userID = DefaultUserID
	}

	broker := req.Broker
	if broker == "" {
		broker = DefaultBroker
	}

	var statementDate *time.Time
	if req.StatementDate != "" {
		date, err := time.Parse("2006-01-02", req.StatementDate)
		if err != nil {
			return nil, err
		}
		statementDate = &date
	}

	ext := strings.ToLower(filepath.Ext(req.FileName))
	path, err := s.store.Save(data, ext)
	if err != nil {
		return nil, err
	}

	stmt := &model.Statement{
		ID:              uuid.New().String(),
		UserID:          userID,
		Broker:          broker,
		StatementDate:   statementDate,
		DocumentType:    docType,
		DocumentSubType: subType,
		FileName:        req.FileName,
		FilePath:        path,
		ParseStatus:     model.ParseStatusPending,
	}
	if err := s.statementRepo.Create(stmt); err != nil {
		return nil, err
	}

	s.queue.Enqueue(stmt.ID)

	message := "statement accepted"
	if docType != "" {
		message = fmt.Sprintf("statement accepted as %s", docType)
	}

	return &model.UploadResult{
		ID:      stmt.ID,
		Message: message,
		Status:  model.ParseStatusPending,
	}, nil
}

// List returns statement summaries for a user, newest first.
func (s *StatementService) List(userID string) ([]model.StatementSummary, error) {
	if userID == "" {
		userID = DefaultUserID
	}
	return s.statementRepo.List(userID)
}

// Get returns one statement including its parse payload and holdings snapshot.
func (s *StatementService) Get(id string) (*model.Statement, error) {
	return s.statementRepo.GetByID(id)
}

// Retry resets a statement to pending and re-enqueues it. Reconciliation of
// additive records is not reversed, so retrying a completed statement can
// double-count tax totals.
func (s *StatementService) Retry(id string) (*model.UploadResult, error) {
	stmt, err := s.statementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.statementRepo.UpdateStatus(stmt.ID, model.ParseStatusPending, ""); err != nil {
		return nil, err
	}
	s.queue.Enqueue(stmt.ID)

	return &model.UploadResult{
		ID:      stmt.ID,
		Message: "statement re-queued for parsing",
		Status:  model.ParseStatusPending,
	}, nil
}

// SetStatus performs a manual status override.
func (s *StatementService) SetStatus(id string, req request.SetStatementStatusRequest) error {
	if err := validation.ValidateStatementStatus(req); err != nil {
		return err
	}
	return s.statementRepo.UpdateStatus(id, model.ParseStatus(req.Status), "")
}

// Catalog returns the document-type taxonomy.
func (s *StatementService) Catalog() []model.DocumentTypeEntry {
	return model.DocumentTypeCatalog()
}
