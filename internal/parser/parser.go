// Package parser turns raw statement content into typed parse results.
//
// One parser exists per document category. Parser selection is a strategy
// table keyed by (file extension, document type, document sub-type); adding
// a new category is a single registration. Unmatched combinations fall back
// to the holdings parser, the most commonly produced statement with the
// loosest format.
package parser

import (
	"regexp"
	"strings"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

// Input is the raw content handed to a parser. Text is set for PDF sources,
// Rows for XLSX sources. Empty content is a valid input and yields an empty
// result, never an error.
type Input struct {
	Text    string
	Rows    [][]string
	SubType string
}

// Lines splits the PDF text into trimmed lines, dropping blanks. For row
// input, each row is joined on two spaces so that text-oriented heuristics
// can run against XLSX content too.
func (in Input) Lines() []string {
	var raw []string
	if in.Text != "" {
		raw = strings.Split(in.Text, "\n")
	} else {
		for _, row := range in.Rows {
			raw = append(raw, strings.Join(row, "  "))
		}
	}

	var lines []string
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Parser converts raw content into a typed Result. Parsers must tolerate
// empty input and never fail on missing matches.
type Parser interface {
	Parse(in Input) (*Result, error)
}

type registryKey struct {
	ext     string
	docType model.DocumentType
	subType string
}

// Registry maps (extension, document type, sub-type) to a parser.
type Registry struct {
	parsers  map[registryKey]Parser
	fallback Parser
}

// NewRegistry builds the default strategy table covering every document
// category for both supported extensions.
func NewRegistry() *Registry {
	r := &Registry{
		parsers:  make(map[registryKey]Parser),
		fallback: &HoldingsParser{},
	}

	for _, ext := range []string{".pdf", ".xlsx"} {
		r.Register(ext, model.DocumentTypeHoldings, "", &HoldingsParser{})
		r.Register(ext, model.DocumentTypePnL, "", &PnLParser{})
		r.Register(ext, model.DocumentTypePnL, model.SubTypeDividend, &DividendParser{})
		r.Register(ext, model.DocumentTypeTax, "", &TaxParser{})
		r.Register(ext, model.DocumentTypeTransactions, "", &TransactionsParser{})
		r.Register(ext, model.DocumentTypeGSTInvoice, "", &GenericParser{})
		r.Register(ext, model.DocumentTypeCMRCopy, "", &GenericParser{})
	}

	return r
}

// Register binds a parser to (ext, type, subType). An empty subType acts as
// the wildcard entry for the document type.
func (r *Registry) Register(ext string, docType model.DocumentType, subType string, p Parser) {
	r.parsers[registryKey{ext, docType, subType}] = p
}

// Lookup resolves the parser for a statement. Resolution order: exact
// (ext, type, subType), then the type's wildcard entry, then the holdings
// fallback.
func (r *Registry) Lookup(ext string, docType model.DocumentType, subType string) Parser {
	ext = strings.ToLower(ext)
	if p, ok := r.parsers[registryKey{ext, docType, subType}]; ok {
		return p
	}
	if p, ok := r.parsers[registryKey{ext, docType, ""}]; ok {
		return p
	}
	return r.fallback
}

// Shared shape patterns used by the free-text heuristics.
var (
	isinRe      = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{10}$`)
	dateTokenRe = regexp.MustCompile(`\d{2}[-/]\d{2}[-/]\d{2,4}`)
	fieldSepRe  = regexp.MustCompile(`[ ]{2,}|\t+`)
	tickerRe    = regexp.MustCompile(`^[A-Z][A-Z0-9&-]{1,19}$`)
	numberRe    = regexp.MustCompile(`^-?\x{20b9}?\s*\d[\d,]*\.?\d*$`)
)

// isISIN reports whether the token has the ISIN shape.
func isISIN(s string) bool { return isinRe.MatchString(s) }

// isNumberToken reports whether the token looks like a bare amount.
func isNumberToken(s string) bool { return numberRe.MatchString(strings.TrimSpace(s)) }

// splitFields splits a statement line on runs of 2+ spaces or tabs.
func splitFields(line string) []string {
	var fields []string
	for _, f := range fieldSepRe.Split(line, -1) {
		f = strings.TrimSpace(f)
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// rowHasPrefix reports whether the row's first cells match the given header
// cells, case-insensitively.
func rowHasPrefix(row []string, header ...string) bool {
	if len(row) < len(header) {
		return false
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(row[i]), h) {
			return false
		}
	}
	return true
}

// rowValue implements key/value summary scraping over XLSX rows: when a
// row's first cell equals label, the value is the next non-blank cell on the
// same row, or the corresponding cell of the following row.
func rowValue(rows [][]string, idx int, label string) (string, bool) {
	row := rows[idx]
	if len(row) == 0 || !strings.EqualFold(row[0], label) {
		return "", false
	}
	for _, cell := range row[1:] {
		if cell != "" {
			return cell, true
		}
	}
	if idx+1 < len(rows) {
		for _, cell := range rows[idx+1] {
			if cell != "" {
				return cell, true
			}
		}
	}
	return "", false
}

// SanitizeSymbol synthesizes a symbol key from a display name when no ticker
// is present: uppercased, non-alphanumerics collapsed to underscores, capped
// at 20 characters.
func SanitizeSymbol(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToUpper(strings.TrimSpace(name)) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	s := strings.Trim(b.String(), "_")
	if len(s) > 20 {
		s = s[:20]
	}
	return s
}
