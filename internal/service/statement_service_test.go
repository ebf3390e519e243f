package service_test

import (
	"errors"
	"testing"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/api/request"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/apperrors"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/service"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/testutil"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/validation"
)

func TestStatementUpload(t *testing.T) {
	db := testutil.SetupTestDB(t)
	queue := &testutil.NopQueue{}
	svc := testutil.NewTestStatementService(t, db, queue)

	req := request.UploadStatementRequest{
		Broker:          "Groww",
		StatementDate:   "2024-07-31",
		DocumentType:    "holdings",
		DocumentSubType: "stocks",
		FileName:        "statement.xlsx",
	}

	result, err := svc.Upload(req, []byte("workbook bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if result.Status != model.ParseStatusPending {
		t.Errorf("Expected pending status, got %q", result.Status)
	}
	if result.Message != "statement accepted as holdings" {
		t.Errorf("Unexpected message: %q", result.Message)
	}

	if len(queue.Enqueued) != 1 || queue.Enqueued[0] != result.ID {
		t.Errorf("Expected statement %s enqueued, got %v", result.ID, queue.Enqueued)
	}

	stmt, err := svc.Get(result.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stmt.UserID != service.DefaultUserID {
		t.Errorf("Expected default user, got %q", stmt.UserID)
	}
	if stmt.DocumentType != model.DocumentTypeHoldings || stmt.DocumentSubType != model.SubTypeStocks {
		t.Errorf("Unexpected document type: %s/%s", stmt.DocumentType, stmt.DocumentSubType)
	}
	if stmt.StatementDate == nil || stmt.StatementDate.Format("2006-01-02") != "2024-07-31" {
		t.Errorf("Unexpected statement date: %v", stmt.StatementDate)
	}
	if stmt.FilePath == "" {
		t.Error("Expected the stored file path on the statement")
	}
}

func TestStatementUploadClassifiesFromFilename(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestStatementService(t, db, &testutil.NopQueue{})

	result, err := svc.Upload(request.UploadStatementRequest{
		FileName: "Stocks_Holdings_Statement_2024-07-31.xlsx",
	}, []byte("workbook bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	stmt, err := svc.Get(result.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stmt.DocumentType != model.DocumentTypeHoldings {
		t.Errorf("Expected classified type holdings, got %q", stmt.DocumentType)
	}
	if stmt.DocumentSubType != model.SubTypeStocks {
		t.Errorf("Expected classified sub-type stocks, got %q", stmt.DocumentSubType)
	}
}

func TestStatementUploadExplicitSubTypeOverridesClassified(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestStatementService(t, db, &testutil.NopQueue{})

	result, err := svc.Upload(request.UploadStatementRequest{
		FileName:        "Stocks_Holdings_Statement_2024.xlsx",
		DocumentSubType: model.SubTypeDemat,
	}, []byte("workbook bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	stmt, err := svc.Get(result.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stmt.DocumentSubType != model.SubTypeDemat {
		t.Errorf("Expected sub-type demat, got %q", stmt.DocumentSubType)
	}
}

func TestStatementUploadUnclassifiableFilenameAccepted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	queue := &testutil.NopQueue{}
	svc := testutil.NewTestStatementService(t, db, queue)

	result, err := svc.Upload(request.UploadStatementRequest{
		FileName: "random_document.xlsx",
	}, []byte("workbook bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if result.Status != model.ParseStatusPending {
		t.Errorf("Expected pending status, got %q", result.Status)
	}
	if len(queue.Enqueued) != 1 {
		t.Errorf("Expected statement enqueued, got %v", queue.Enqueued)
	}

	stmt, err := svc.Get(result.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stmt.DocumentType != "" {
		t.Errorf("Expected typeless statement, got %q", stmt.DocumentType)
	}
}

func TestStatementUploadDefaultsBroker(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestStatementService(t, db, &testutil.NopQueue{})

	result, err := svc.Upload(request.UploadStatementRequest{
		FileName:     "Stocks_Holdings_Statement_2024-07-31.xlsx",
		DocumentType: "holdings",
	}, []byte("workbook bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	stmt, err := svc.Get(result.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stmt.Broker != service.DefaultBroker {
		t.Errorf("Expected broker %q, got %q", service.DefaultBroker, stmt.Broker)
	}
}

func TestStatementUploadRejectsExtension(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestStatementService(t, db, &testutil.NopQueue{})

	_, err := svc.Upload(request.UploadStatementRequest{
		FileName: "statement.csv",
	}, []byte("csv bytes"))

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	if _, ok := verr.Fields["file"]; !ok {
		t.Errorf("Expected a file field error, got %v", verr.Fields)
	}
}

func TestStatementUploadEmptyFile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestStatementService(t, db, &testutil.NopQueue{})

	_, err := svc.Upload(request.UploadStatementRequest{
		FileName:     "statement.pdf",
		DocumentType: "tax",
	}, nil)
	if !errors.Is(err, apperrors.ErrFileMissing) {
		t.Errorf("Expected ErrFileMissing, got %v", err)
	}
}

func TestStatementUploadInvalidSubType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestStatementService(t, db, &testutil.NopQueue{})

	_, err := svc.Upload(request.UploadStatementRequest{
		FileName:        "statement.xlsx",
		DocumentType:    "holdings",
		DocumentSubType: "fno",
	}, []byte("workbook bytes"))

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	if _, ok := verr.Fields["documentSubType"]; !ok {
		t.Errorf("Expected a documentSubType field error, got %v", verr.Fields)
	}
}

func TestStatementRetry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	queue := &testutil.NopQueue{}
	svc := testutil.NewTestStatementService(t, db, queue)

	stmt := testutil.NewStatement().
		WithParseStatus(model.ParseStatusFailed).
		Build(t, db)

	result, err := svc.Retry(stmt.ID)
	if err != nil {
		t.Fatalf("Retry failed: %v", err)
	}
	if result.Status != model.ParseStatusPending {
		t.Errorf("Expected pending status, got %q", result.Status)
	}
	if len(queue.Enqueued) != 1 || queue.Enqueued[0] != stmt.ID {
		t.Errorf("Expected statement %s enqueued, got %v", stmt.ID, queue.Enqueued)
	}

	stored, err := svc.Get(stmt.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.ParseStatus != model.ParseStatusPending {
		t.Errorf("Expected pending status in store, got %q", stored.ParseStatus)
	}
}

func TestStatementRetryUnknownID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestStatementService(t, db, &testutil.NopQueue{})

	if _, err := svc.Retry(testutil.MakeID()); !errors.Is(err, apperrors.ErrStatementNotFound) {
		t.Errorf("Expected ErrStatementNotFound, got %v", err)
	}
}

func TestStatementSetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestStatementService(t, db, &testutil.NopQueue{})

	stmt := testutil.NewStatement().Build(t, db)

	if err := svc.SetStatus(stmt.ID, request.SetStatementStatusRequest{Status: "failed"}); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	stored, err := svc.Get(stmt.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.ParseStatus != model.ParseStatusFailed {
		t.Errorf("Expected failed status, got %q", stored.ParseStatus)
	}

	err = svc.SetStatus(stmt.ID, request.SetStatementStatusRequest{Status: "bogus"})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Errorf("Expected a validation error, got %v", err)
	}
}

func TestStatementList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestStatementService(t, db, &testutil.NopQueue{})

	testutil.NewStatement().Build(t, db)
	testutil.NewStatement().Build(t, db)
	testutil.NewStatement().WithUserID("someone-else").Build(t, db)

	list, err := svc.List("")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("Expected 2 statements for the default user, got %d", len(list))
	}
}
