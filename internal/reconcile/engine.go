// Package reconcile merges parse results into the user's persistent
// holdings, P&L, tax, and transaction records.
//
// Merge semantics differ per entity: holdings are a replace merge keyed by
// symbol, P&L records are created fresh per parse, tax records are additive
// within a financial year, and transactions are insert-only. A single
// record's validation failure is reported and skipped; it never aborts the
// remaining records of the same statement.
package reconcile

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/parser"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/repository"
)

// Engine applies parse results against the repositories.
type Engine struct {
	holdings     *repository.HoldingRepository
	pnl          *repository.PnLRepository
	tax          *repository.TaxRepository
	transactions *repository.TransactionRepository
}

// NewEngine creates a new Engine with the provided repository dependencies.
func NewEngine(
	holdings *repository.HoldingRepository,
	pnl *repository.PnLRepository,
	tax *repository.TaxRepository,
	transactions *repository.TransactionRepository,
) *Engine {
	return &Engine{
		holdings:     holdings,
		pnl:          pnl,
		tax:          tax,
		transactions: transactions,
	}
}

// Apply merges a parse result into the user's records, applying the merge
// rules for the statement's document type. It always returns a report;
// per-record failures are collected there rather than returned.
func (e *Engine) Apply(stmt *model.Statement, res *parser.Result) *Report {
	report := &Report{}

	if len(res.Holdings) > 0 {
		e.applyHoldings(stmt, res.Holdings, report)
	}

	switch stmt.DocumentType {
	case model.DocumentTypePnL:
		e.applyPnL(stmt, res, report)
	case model.DocumentTypeTax:
		e.applyTax(stmt, res, report)
	case model.DocumentTypeTransactions:
		e.applyTransactions(stmt, res.Transactions, report)
	}

	return report
}

// applyHoldings performs the replace merge: an existing holding with the
// same symbol is overwritten in place, otherwise a new one is created.
func (e *Engine) applyHoldings(stmt *model.Statement, holdings []parser.Holding, report *Report) {
	for _, ph := range holdings {
		if ph.Symbol == "" {
			report.skip(ph.Name, "blank symbol")
			continue
		}
		if ph.Quantity <= 0 {
			report.skip(ph.Symbol, "non-positive quantity")
			continue
		}
		if ph.AvgPrice < 0 {
			report.skip(ph.Symbol, "negative average price")
			continue
		}

		existing, err := e.holdings.GetBySymbol(stmt.UserID, ph.Symbol)
		if err != nil {
			log.Printf("holding lookup failed for %s: %v", ph.Symbol, err)
			report.skip(ph.Symbol, "lookup failed")
			continue
		}

		if existing != nil {
			existing.ISIN = ph.ISIN
			existing.Name = ph.Name
			existing.Quantity = ph.Quantity
			existing.AvgPrice = ph.AvgPrice
			existing.CurrentPrice = ph.CurrentPrice
			existing.HoldingType = model.HoldingType(ph.HoldingType)
			existing.Source = model.HoldingSource(ph.Source)
			if err := e.holdings.Update(existing); err != nil {
				log.Printf("holding update failed for %s: %v", ph.Symbol, err)
				report.skip(ph.Symbol, "update failed")
				continue
			}
			report.Updated++
			continue
		}

		h := &model.Holding{
			ID:           uuid.New().String(),
			UserID:       stmt.UserID,
			Symbol:       ph.Symbol,
			ISIN:         ph.ISIN,
			Name:         ph.Name,
			Quantity:     ph.Quantity,
			AvgPrice:     ph.AvgPrice,
			CurrentPrice: ph.CurrentPrice,
			HoldingType:  model.HoldingType(ph.HoldingType),
			Source:       model.HoldingSource(ph.Source),
		}
		if err := e.holdings.Create(h); err != nil {
			log.Printf("holding create failed for %s: %v", ph.Symbol, err)
			report.skip(ph.Symbol, "create failed")
			continue
		}
		report.Created++
	}
}

// applyPnL creates one fresh monthly record per parse. There is no merge:
// reprocessing the same statement produces a duplicate record.
func (e *Engine) applyPnL(stmt *model.Statement, res *parser.Result, report *Report) {
	summary := res.Summary
	if res.Kind == parser.KindDividend {
		summary = &parser.PnLSummary{Dividend: res.TotalDividend}
	}
	if summary.Empty() {
		return
	}

	periodStart := statementMonth(stmt)
	record := &model.PnLRecord{
		ID:             uuid.New().String(),
		UserID:         stmt.UserID,
		StatementID:    stmt.ID,
		PeriodType:     model.PeriodTypeMonthly,
		PeriodStart:    periodStart,
		RealisedPnL:    summary.Realised,
		UnrealisedPnL:  summary.Unrealised,
		DividendIncome: summary.Dividend,
		IntradayPnL:    summary.Intraday,
		FnoPnL:         summary.Fno,
		TotalCharges:   summary.Charges,
	}
	record.ComputeTotal()

	if err := e.pnl.Create(record); err != nil {
		log.Printf("pnl record create failed for statement %s: %v", stmt.ID, err)
		report.skip("pnl summary", "create failed")
		return
	}
	report.Created++
}

// applyTax folds the parsed figures into the financial year's record. The
// merge is additive: reprocessing the same document adds again. This is
// intentional for combining multiple documents covering one year.
func (e *Engine) applyTax(stmt *model.Statement, res *parser.Result, report *Report) {
	parsed := TaxTotals{}
	if res.TaxSummary != nil {
		parsed.STCG = res.TaxSummary.STCG
		parsed.LTCG = res.TaxSummary.LTCG
		parsed.Intraday = res.TaxSummary.Intraday
	}
	for _, d := range res.ElssDeductions {
		parsed.Elss += d.Amount
	}
	if parsed == (TaxTotals{}) {
		return
	}

	fy := FinancialYear(statementMonth(stmt))
	note := fmt.Sprintf("added from %s", stmt.FileName)

	existing, err := e.tax.GetByYear(stmt.UserID, fy)
	if err != nil {
		log.Printf("tax record lookup failed for %s: %v", fy, err)
		report.skip("tax summary", "lookup failed")
		return
	}

	if existing != nil {
		combined := TaxTotals{
			STCG:     existing.STCG,
			LTCG:     existing.LTCG,
			Intraday: existing.IntradayGains,
			Elss:     existing.ElssDeduction,
		}.Add(parsed)

		existing.STCG = combined.STCG
		existing.LTCG = combined.LTCG
		existing.IntradayGains = combined.Intraday
		existing.ElssDeduction = combined.Elss
		existing.Notes = appendNote(existing.Notes, note)
		if err := e.tax.Update(existing); err != nil {
			log.Printf("tax record update failed for %s: %v", fy, err)
			report.skip("tax summary", "update failed")
			return
		}
		report.Updated++
		return
	}

	record := &model.TaxRecord{
		ID:            uuid.New().String(),
		UserID:        stmt.UserID,
		FinancialYear: fy,
		STCG:          parsed.STCG,
		LTCG:          parsed.LTCG,
		IntradayGains: parsed.Intraday,
		ElssDeduction: parsed.Elss,
		Notes:         note,
	}
	if err := e.tax.Create(record); err != nil {
		log.Printf("tax record create failed for %s: %v", fy, err)
		report.skip("tax summary", "create failed")
		return
	}
	report.Created++
}

// applyTransactions inserts one row per parsed transaction. The type token
// is normalized; a row with an unknown token or unparsable date is skipped,
// never the whole statement.
func (e *Engine) applyTransactions(stmt *model.Statement, transactions []parser.Transaction, report *Report) {
	for _, pt := range transactions {
		txType, ok := normalizeType(pt.Type)
		if !ok {
			report.skip(rowLabel(pt), "unrecognized type token")
			continue
		}

		date, err := parseTransactionDate(pt.Date)
		if err != nil {
			report.skip(rowLabel(pt), "unparsable date")
			continue
		}

		symbol := pt.Symbol
		if symbol == "" {
			symbol = parser.SanitizeSymbol(pt.Name)
		}
		if symbol == "" {
			report.skip(rowLabel(pt), "no instrument identity")
			continue
		}

		amount := pt.Amount
		if amount == 0 {
			amount = pt.Quantity * pt.Price
		}

		t := &model.Transaction{
			ID:          uuid.New().String(),
			UserID:      stmt.UserID,
			StatementID: stmt.ID,
			Type:        txType,
			AssetType:   model.AssetType(pt.AssetType),
			Symbol:      symbol,
			Name:        pt.Name,
			Quantity:    pt.Quantity,
			Price:       pt.Price,
			Amount:      amount,
			Date:        date,
			Notes:       pt.Notes,
		}
		if err := e.transactions.Create(t); err != nil {
			log.Printf("transaction create failed for %s: %v", symbol, err)
			report.skip(rowLabel(pt), "create failed")
			continue
		}
		report.Created++
	}
}

// appendNote joins merge provenance notes on an existing record.
func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	if note == "" {
		return existing
	}
	return existing + "; " + note
}

// normalizeType maps raw statement tokens onto buy/sell.
func normalizeType(token string) (model.TransactionType, bool) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "BUY", "PURCHASE", "SIP":
		return model.TransactionTypeBuy, true
	case "SELL", "REDEMPTION":
		return model.TransactionTypeSell, true
	}
	return "", false
}

// transactionDateFormats covers broker export conventions, day first.
var transactionDateFormats = []string{
	"02-01-2006",
	"02/01/2006",
	"02-01-06",
	"02/01/06",
	"2006-01-02",
}

func parseTransactionDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range transactionDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}

// statementMonth returns the first day of the statement date's calendar
// month, falling back to the current month when no date was supplied.
func statementMonth(stmt *model.Statement) time.Time {
	date := time.Now().UTC()
	if stmt.StatementDate != nil {
		date = *stmt.StatementDate
	}
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func rowLabel(pt parser.Transaction) string {
	if pt.Symbol != "" {
		return pt.Symbol
	}
	if pt.Name != "" {
		return pt.Name
	}
	return pt.Date
}
