// Package job drives the statement parsing pipeline asynchronously.
//
// Each statement is one unit of work: dispatch, extraction, parsing, and
// reconciliation run synchronously inside a single worker. The status field
// is the state machine: pending -> processing -> completed, or failed from
// either active state. Setting processing up front acts as a lightweight
// guard against duplicate runs, though it does not mutually exclude true
// concurrent execution of the same statement.
package job

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/apperrors"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/extract"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/filestore"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/parser"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/reconcile"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/repository"
)

// maxErrorLen truncates stored failure messages.
const maxErrorLen = 500

// Extractor converts a statement file into raw parse input. It is an
// interface so tests can substitute synthetic content.
type Extractor interface {
	PDFText(path string) string
	XLSXRows(path string) [][]string
}

// FileExtractor is the production Extractor backed by the extract package.
type FileExtractor struct{}

// PDFText extracts the text blob of a PDF file.
func (FileExtractor) PDFText(path string) string { return extract.PDFText(path) }

// XLSXRows extracts the first sheet of an XLSX workbook.
func (FileExtractor) XLSXRows(path string) [][]string { return extract.XLSXRows(path) }

// Runner processes statements on a bounded worker pool.
type Runner struct {
	statements *repository.StatementRepository
	store      *filestore.Store
	extractor  Extractor
	registry   *parser.Registry
	engine     *reconcile.Engine

	jobs chan string
	g    *errgroup.Group
}

// NewRunner creates a Runner. Call Start before Enqueue.
func NewRunner(
	statements *repository.StatementRepository,
	store *filestore.Store,
	extractor Extractor,
	registry *parser.Registry,
	engine *reconcile.Engine,
) *Runner {
	return &Runner{
		statements: statements,
		store:      store,
		extractor:  extractor,
		registry:   registry,
		engine:     engine,
		jobs:       make(chan string, 64),
	}
}

// Start launches the worker pool. Workers drain the queue until ctx is
// cancelled; an enqueued parse always runs to completion or failure.
func (r *Runner) Start(ctx context.Context, workers int) {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	r.g = g

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case id := <-r.jobs:
					if err := r.Process(id); err != nil {
						log.Printf("statement %s failed: %v", id, err)
					}
				}
			}
		})
	}
}

// Wait blocks until all workers have exited.
func (r *Runner) Wait() error {
	if r.g == nil {
		return nil
	}
	return r.g.Wait()
}

// Enqueue schedules a statement for processing.
func (r *Runner) Enqueue(statementID string) {
	r.jobs <- statementID
}

// Process runs the pipeline for one statement synchronously. Any uncaught
// error transitions the statement to failed; reconciliation applied before
// the failure is not rolled back.
func (r *Runner) Process(statementID string) error {
	stmt, err := r.statements.GetByID(statementID)
	if err != nil {
		return err
	}

	if err := r.statements.UpdateStatus(statementID, model.ParseStatusProcessing, ""); err != nil {
		return err
	}

	res, report, err := r.runPipeline(stmt)
	if err != nil {
		msg := err.Error()
		if len(msg) > maxErrorLen {
			msg = msg[:maxErrorLen]
		}
		if statusErr := r.statements.UpdateStatus(statementID, model.ParseStatusFailed, msg); statusErr != nil {
			log.Printf("failed to record failure for statement %s: %v", statementID, statusErr)
		}
		return err
	}

	payload, err := json.Marshal(struct {
		Result *parser.Result    `json:"result"`
		Report *reconcile.Report `json:"report"`
	}{res, report})
	if err != nil {
		return fmt.Errorf("failed to encode parse payload: %w", err)
	}

	snapshot, err := json.Marshal(res.Holdings)
	if err != nil {
		return fmt.Errorf("failed to encode holdings snapshot: %w", err)
	}

	if err := r.statements.SetResult(statementID, payload, snapshot); err != nil {
		return err
	}

	log.Printf("statement %s completed: %d created, %d updated, %d skipped",
		statementID, report.Created, report.Updated, len(report.Skipped))
	return nil
}

// runPipeline dispatches on extension, extracts raw content, parses, and
// reconciles. Unreadable content degrades to empty input rather than an
// error; parsers return empty results for it.
func (r *Runner) runPipeline(stmt *model.Statement) (*parser.Result, *reconcile.Report, error) {
	tmpPath, cleanup, err := r.store.LoadTemp(stmt.FilePath)
	if err != nil {
		return nil, nil, err
	}
	defer cleanup()

	ext := strings.ToLower(filepath.Ext(stmt.FileName))
	in := parser.Input{SubType: stmt.DocumentSubType}
	switch ext {
	case ".pdf":
		in.Text = r.extractor.PDFText(tmpPath)
	case ".xlsx":
		in.Rows = r.extractor.XLSXRows(tmpPath)
	default:
		return nil, nil, fmt.Errorf("%w %q", apperrors.ErrUnsupportedFileType, ext)
	}

	p := r.registry.Lookup(ext, stmt.DocumentType, stmt.DocumentSubType)
	res, err := p.Parse(in)
	if err != nil {
		return nil, nil, err
	}

	report := r.engine.Apply(stmt, res)
	return res, report, nil
}

// RequeueStuck re-queues statements stuck in processing since before the
// given age. Used to recover from worker crashes; runs on a cron schedule.
func (r *Runner) RequeueStuck(age time.Duration) {
	ids, err := r.statements.ListStuckProcessing(time.Now().UTC().Add(-age))
	if err != nil {
		log.Printf("stuck statement sweep failed: %v", err)
		return
	}

	for _, id := range ids {
		if err := r.statements.UpdateStatus(id, model.ParseStatusPending, ""); err != nil {
			log.Printf("failed to reset stuck statement %s: %v", id, err)
			continue
		}
		log.Printf("re-queueing stuck statement %s", id)
		r.Enqueue(id)
	}
}
