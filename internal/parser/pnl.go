package parser

import (
	"regexp"
	"strings"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/extract"
)

// PnLParser extracts a profit-and-loss summary plus realised and unrealised
// trade lists from P&L statements.
type PnLParser struct{}

// summaryLabels maps first-cell labels to summary fields for the XLSX
// key/value scrape.
var summaryLabels = map[string]func(*PnLSummary, float64){
	"Realised P&L":      func(s *PnLSummary, v float64) { s.Realised = v },
	"Realized P&L":      func(s *PnLSummary, v float64) { s.Realised = v },
	"Unrealised P&L":    func(s *PnLSummary, v float64) { s.Unrealised = v },
	"Unrealized P&L":    func(s *PnLSummary, v float64) { s.Unrealised = v },
	"Dividend Income":   func(s *PnLSummary, v float64) { s.Dividend = v },
	"Intraday P&L":      func(s *PnLSummary, v float64) { s.Intraday = v },
	"F&O P&L":           func(s *PnLSummary, v float64) { s.Fno = v },
	"Total Charges":     func(s *PnLSummary, v float64) { s.Charges = v },
	"Charges and Taxes": func(s *PnLSummary, v float64) { s.Charges = v },
}

// pnlTextPatterns are the regex total-extraction patterns for the PDF path.
// Only the first match per label is taken; absence leaves the field unset.
// The realised pattern is word-boundary anchored so it cannot match inside
// "Unrealised", and each field has exactly one pattern so a later pattern
// can never overwrite an earlier field.
var pnlTextPatterns = []struct {
	re    *regexp.Regexp
	apply func(*PnLSummary, float64)
}{
	{regexp.MustCompile(`(?i)\breali[sz]ed\s+(?:profit|p&l)[:\s]*\x{20b9}?\s*(-?[\d,]+\.?\d*)`), func(s *PnLSummary, v float64) { s.Realised = v }},
	{regexp.MustCompile(`(?i)\bunreali[sz]ed\s+(?:profit|p&l)[:\s]*\x{20b9}?\s*(-?[\d,]+\.?\d*)`), func(s *PnLSummary, v float64) { s.Unrealised = v }},
	{regexp.MustCompile(`(?i)dividend(?:\s+income)?[:\s]*\x{20b9}?\s*(-?[\d,]+\.?\d*)`), func(s *PnLSummary, v float64) { s.Dividend = v }},
	{regexp.MustCompile(`(?i)intraday\s+(?:profit|p&l)[:\s]*\x{20b9}?\s*(-?[\d,]+\.?\d*)`), func(s *PnLSummary, v float64) { s.Intraday = v }},
	{regexp.MustCompile(`(?i)f&o\s+(?:profit|p&l)[:\s]*\x{20b9}?\s*(-?[\d,]+\.?\d*)`), func(s *PnLSummary, v float64) { s.Fno = v }},
	{regexp.MustCompile(`(?i)total\s+charges[:\s]*\x{20b9}?\s*(-?[\d,]+\.?\d*)`), func(s *PnLSummary, v float64) { s.Charges = v }},
}

// Parse extracts the summary and trade lists. Trade sub-sections are told
// apart by column layout: a sell-date column marks realised trades, a
// closing-date column marks unrealised ones.
func (p *PnLParser) Parse(in Input) (*Result, error) {
	res := &Result{Kind: KindPnL, Summary: &PnLSummary{}}

	if len(in.Rows) > 0 {
		p.parseRows(in.Rows, res)
	} else {
		p.parseText(in.Text, res)
	}

	return res, nil
}

func (p *PnLParser) parseRows(rows [][]string, res *Result) {
	// "", realised, or unrealised
	section := ""

	for i, row := range rows {
		if len(row) == 0 {
			section = ""
			continue
		}

		for label, apply := range summaryLabels {
			if v, ok := rowValue(rows, i, label); ok {
				apply(res.Summary, extract.ParseNumber(v))
			}
		}

		if headerHasColumn(row, "Sell Date") {
			section = "realised"
			continue
		}
		if headerHasColumn(row, "Closing Date") {
			section = "unrealised"
			continue
		}

		if section == "" || row[0] == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(row[0]), "total") ||
			strings.HasPrefix(strings.ToLower(row[0]), "disclaimer") {
			section = ""
			continue
		}

		trade := tradeFromRow(row)
		if trade.Symbol == "" {
			continue
		}
		if section == "realised" {
			res.RealisedTrades = append(res.RealisedTrades, trade)
		} else {
			res.UnrealisedTrades = append(res.UnrealisedTrades, trade)
		}
	}
}

func (p *PnLParser) parseText(text string, res *Result) {
	for _, pat := range pnlTextPatterns {
		if m := pat.re.FindStringSubmatch(text); m != nil {
			pat.apply(res.Summary, extract.ParseNumber(m[1]))
		}
	}
}

// headerHasColumn reports whether any cell of the row equals the label.
func headerHasColumn(row []string, label string) bool {
	for _, c := range row {
		if strings.EqualFold(c, label) {
			return true
		}
	}
	return false
}

// tradeFromRow reads a trade line positionally: name, then ISIN if present,
// then quantity, price, and a trailing P&L amount.
func tradeFromRow(row []string) Trade {
	t := Trade{Symbol: SanitizeSymbol(row[0])}

	var nums []float64
	for _, c := range row[1:] {
		switch {
		case isISIN(c):
			t.ISIN = c
		case dateTokenRe.MatchString(c):
			t.Date = c
		case isNumberToken(c):
			nums = append(nums, extract.ParseNumber(c))
		}
	}

	if len(nums) > 0 {
		t.Quantity = nums[0]
	}
	if len(nums) > 1 {
		t.Price = nums[1]
	}
	if len(nums) > 2 {
		t.PnL = nums[len(nums)-1]
	}
	return t
}
