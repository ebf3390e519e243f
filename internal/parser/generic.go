package parser

import (
	"regexp"
	"strings"
)

// GenericParser handles typeless documents (GST invoices, CMR copies) with a
// best-effort single-pass extraction: an invoice number, a date, a currency
// amount, and the leading lines verbatim for manual inspection.
type GenericParser struct{}

const maxRawLines = 50

var (
	invoiceNumberRe = regexp.MustCompile(`(?i)invoice\s*(?:no|number|#)[.:\s]*([A-Z0-9/-]+)`)
	currencyRe      = regexp.MustCompile(`\x{20b9}\s*([\d,]+\.?\d*)`)
)

// Parse extracts whatever it can find; absence of any field is normal.
func (p *GenericParser) Parse(in Input) (*Result, error) {
	lines := in.Lines()
	text := strings.Join(lines, "\n")

	extracted := make(map[string]string)
	if m := invoiceNumberRe.FindStringSubmatch(text); m != nil {
		extracted["invoice_number"] = m[1]
	}
	if m := dateTokenRe.FindString(text); m != "" {
		extracted["date"] = m
	}
	if m := currencyRe.FindStringSubmatch(text); m != nil {
		extracted["amount"] = m[1]
	}

	raw := lines
	if len(raw) > maxRawLines {
		raw = raw[:maxRawLines]
	}

	return &Result{Kind: KindGeneric, Extracted: extracted, RawLines: raw}, nil
}
