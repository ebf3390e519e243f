package parser

import (
	"regexp"
	"strings"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/extract"
)

// DividendParser extracts dividend credit lines from dividend statements.
type DividendParser struct{}

// totalDividendRe matches the document-level total line. When present it
// takes precedence over the sum of line items.
var totalDividendRe = regexp.MustCompile(`(?i)total\s+dividend\s+amount[:\s]*\x{20b9}?\s*(-?[\d,]+\.?\d*)`)

// Parse extracts dividends from XLSX rows or PDF text.
func (p *DividendParser) Parse(in Input) (*Result, error) {
	res := &Result{Kind: KindDividend}

	if len(in.Rows) > 0 {
		p.parseRows(in.Rows, res)
	} else {
		p.parseText(in.Text, res)
	}

	if m := totalDividendRe.FindStringSubmatch(strings.Join(in.Lines(), "\n")); m != nil {
		res.TotalDividend = extract.ParseNumber(m[1])
	} else {
		for _, d := range res.Dividends {
			res.TotalDividend += d.NetAmount
		}
	}

	return res, nil
}

func (p *DividendParser) parseRows(rows [][]string, res *Result) {
	inSection := false

	for _, row := range rows {
		if rowHasPrefix(row, "Stock Name", "ISIN") || rowHasPrefix(row, "Company", "ISIN") {
			inSection = true
			continue
		}
		if !inSection {
			continue
		}
		if len(row) == 0 || row[0] == "" || !isISIN(cell(row, 1)) {
			inSection = false
			continue
		}

		// Columns: company, ISIN, ex-date, shares, per-share amount, net amount.
		res.Dividends = append(res.Dividends, Dividend{
			Company:   row[0],
			ISIN:      cell(row, 1),
			ExDate:    cell(row, 2),
			Shares:    extract.ParseNumber(cell(row, 3)),
			PerShare:  extract.ParseNumber(cell(row, 4)),
			NetAmount: extract.ParseNumber(cell(row, 5)),
		})
	}
}

// parseText treats every line with a date token as a candidate dividend row:
// leading text is the company, the trailing numbers are shares, per-share
// amount, and net amount.
func (p *DividendParser) parseText(text string, res *Result) {
	for _, line := range strings.Split(text, "\n") {
		if !dateTokenRe.MatchString(line) {
			continue
		}

		fields := splitFields(line)
		d := Dividend{}
		var nums []float64
		var nameParts []string

		for _, f := range fields {
			switch {
			case isISIN(f):
				d.ISIN = f
			case dateTokenRe.MatchString(f):
				d.ExDate = dateTokenRe.FindString(f)
			case isNumberToken(f):
				nums = append(nums, extract.ParseNumber(f))
			default:
				if len(nums) == 0 {
					nameParts = append(nameParts, f)
				}
			}
		}

		d.Company = strings.Join(nameParts, " ")
		if d.Company == "" || len(nums) == 0 {
			continue
		}

		switch len(nums) {
		case 1:
			d.NetAmount = nums[0]
		case 2:
			d.Shares, d.NetAmount = nums[0], nums[1]
		default:
			d.Shares, d.PerShare, d.NetAmount = nums[0], nums[1], nums[len(nums)-1]
		}

		res.Dividends = append(res.Dividends, d)
	}
}
