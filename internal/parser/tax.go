package parser

import (
	"regexp"
	"strings"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/extract"
)

// TaxParser extracts STCG/LTCG/intraday figures, an optional ELSS deduction
// list, and an approximate capital-gains line list from tax statements.
type TaxParser struct{}

// taxPatterns are the label+amount patterns for the summary figures. Only
// the first match per label counts; absence leaves the field at zero.
var taxPatterns = []struct {
	re    *regexp.Regexp
	apply func(*TaxSummary, float64)
}{
	{regexp.MustCompile(`(?i)short[\s-]*term\s+capital\s+gains?[:\s]*\x{20b9}?\s*(-?[\d,]+\.?\d*)`), func(s *TaxSummary, v float64) { s.STCG = v }},
	{regexp.MustCompile(`(?i)\bstcg\b[:\s]*\x{20b9}?\s*(-?[\d,]+\.?\d*)`), func(s *TaxSummary, v float64) { s.STCG = v }},
	{regexp.MustCompile(`(?i)long[\s-]*term\s+capital\s+gains?[:\s]*\x{20b9}?\s*(-?[\d,]+\.?\d*)`), func(s *TaxSummary, v float64) { s.LTCG = v }},
	{regexp.MustCompile(`(?i)\bltcg\b[:\s]*\x{20b9}?\s*(-?[\d,]+\.?\d*)`), func(s *TaxSummary, v float64) { s.LTCG = v }},
	{regexp.MustCompile(`(?i)intraday\s+(?:gains?|p&l)[:\s]*\x{20b9}?\s*(-?[\d,]+\.?\d*)`), func(s *TaxSummary, v float64) { s.Intraday = v }},
}

// elssAmountRe finds a currency amount near an ELSS fund name.
var elssAmountRe = regexp.MustCompile(`\x{20b9}?\s*(\d[\d,]*\.?\d*)\s*$`)

// capitalGainLineRe marks approximate capital-gains lines: a date token plus
// a buy/sell keyword.
var capitalGainLineRe = regexp.MustCompile(`(?i)\b(buy|sell|bought|sold)\b`)

// Parse extracts the tax summary, ELSS deductions, and capital-gains lines.
func (p *TaxParser) Parse(in Input) (*Result, error) {
	res := &Result{Kind: KindTax, TaxSummary: &TaxSummary{}}
	lines := in.Lines()
	text := strings.Join(lines, "\n")

	for _, pat := range taxPatterns {
		if m := pat.re.FindStringSubmatch(text); m != nil {
			pat.apply(res.TaxSummary, extract.ParseNumber(m[1]))
		}
	}

	for _, line := range lines {
		lower := strings.ToLower(line)

		// ELSS deduction scan: a fund name containing "ELSS" or "Tax Saver"
		// with a trailing currency amount.
		if strings.Contains(lower, "elss") || strings.Contains(lower, "tax saver") {
			if m := elssAmountRe.FindStringSubmatch(line); m != nil {
				name := strings.TrimSpace(strings.TrimSuffix(line, m[0]))
				if name != "" {
					res.ElssDeductions = append(res.ElssDeductions, ElssDeduction{
						FundName: name,
						Amount:   extract.ParseNumber(m[1]),
					})
				}
			}
			continue
		}

		if dateTokenRe.MatchString(line) && capitalGainLineRe.MatchString(line) {
			amount := 0.0
			fields := splitFields(line)
			for i := len(fields) - 1; i >= 0; i-- {
				if isNumberToken(fields[i]) {
					amount = extract.ParseNumber(fields[i])
					break
				}
			}
			res.CapitalGains = append(res.CapitalGains, CapitalGain{Line: line, Amount: amount})
		}
	}

	return res, nil
}
