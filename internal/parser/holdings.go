package parser

import (
	"regexp"
	"strings"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/extract"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

// HoldingsParser extracts position records from holdings statements. It is
// also the structural fallback for unclassified documents.
type HoldingsParser struct{}

// holdingsFallbackRe matches loose "TICKER quantity price" triples anywhere
// in the text. Applied only when the structured scan finds nothing.
var holdingsFallbackRe = regexp.MustCompile(`(?m)^([A-Z][A-Z0-9&-]{1,19})\s+(\d[\d,]*\.?\d*)\s+\x{20b9}?\s*(\d[\d,]*\.?\d*)\s*$`)

// Parse extracts holdings from XLSX rows or PDF text. Records with
// non-positive quantity are dropped.
func (p *HoldingsParser) Parse(in Input) (*Result, error) {
	var holdings []Holding
	if len(in.Rows) > 0 {
		holdings = p.parseRows(in.Rows, in.SubType)
	} else {
		holdings = p.parseText(in.Text, in.SubType)
	}

	kept := holdings[:0]
	for _, h := range holdings {
		if h.Quantity > 0 && h.Symbol != "" {
			kept = append(kept, h)
		}
	}

	return &Result{Kind: KindHoldings, Holdings: kept}, nil
}

// holdingColumns maps header labels to cell positions within a section.
type holdingColumns struct {
	name, isin, qty, avg, current int
}

// parseRows runs the section-boundary scan: rows between a recognized
// holdings header and a trailer marker are emitted when they pass the
// content filter.
func (p *HoldingsParser) parseRows(rows [][]string, subType string) []Holding {
	var holdings []Holding
	inSection := false
	holdingType := holdingTypeFor(subType)
	cols := holdingColumns{name: 0, isin: 1, qty: 2, avg: 3, current: 4}

	for _, row := range rows {
		switch {
		case rowHasPrefix(row, "Stock Name", "ISIN"):
			inSection = true
			holdingType = string(model.HoldingTypeEquity)
			cols = locateHoldingColumns(row)
			continue
		case rowHasPrefix(row, "Scheme Name", "ISIN"):
			inSection = true
			holdingType = string(model.HoldingTypeMf)
			cols = locateHoldingColumns(row)
			continue
		}

		if !inSection {
			continue
		}

		// Trailer marker or a different header ends the section.
		if len(row) == 0 || row[0] == "" ||
			strings.HasPrefix(strings.ToLower(row[0]), "disclaimer") ||
			strings.HasPrefix(strings.ToLower(row[0]), "total") {
			inSection = false
			continue
		}

		if !isISIN(cell(row, cols.isin)) {
			continue
		}

		name := cell(row, cols.name)
		h := Holding{
			Symbol:      SanitizeSymbol(name),
			ISIN:        cell(row, cols.isin),
			Name:        name,
			Quantity:    extract.ParseNumber(cell(row, cols.qty)),
			AvgPrice:    extract.ParseNumber(cell(row, cols.avg)),
			HoldingType: holdingType,
			Source:      string(model.HoldingSourcePdf),
		}
		if cur := extract.ParseNumber(cell(row, cols.current)); cur > 0 {
			h.CurrentPrice = &cur
		}
		holdings = append(holdings, h)
	}

	return holdings
}

// locateHoldingColumns resolves cell positions from a header row, keeping
// positional defaults for anything it cannot find.
func locateHoldingColumns(header []string) holdingColumns {
	cols := holdingColumns{name: 0, isin: 1, qty: 2, avg: 3, current: 4}
	for i, cell := range header {
		label := strings.ToLower(cell)
		switch {
		case label == "isin":
			cols.isin = i
		case strings.Contains(label, "qty"), strings.Contains(label, "quantity"),
			strings.Contains(label, "units"):
			cols.qty = i
		case strings.Contains(label, "average"), strings.Contains(label, "avg"):
			cols.avg = i
		case strings.Contains(label, "closing"), strings.Contains(label, "current"),
			strings.Contains(label, "ltp"):
			cols.current = i
		}
	}
	return cols
}

// parseText scans PDF text for lines carrying an ISIN-shaped token and reads
// name and numbers around it. When that yields nothing, the loose
// "TICKER quantity price" whole-text regex runs as a last resort, so a
// near-empty document is reported "empty" rather than "failed".
func (p *HoldingsParser) parseText(text, subType string) []Holding {
	var holdings []Holding
	holdingType := holdingTypeFor(subType)

	for _, line := range strings.Split(text, "\n") {
		fields := splitFields(line)
		isinIdx := -1
		for i, f := range fields {
			if isISIN(f) {
				isinIdx = i
				break
			}
		}
		if isinIdx < 0 {
			continue
		}

		name := strings.Join(fields[:isinIdx], " ")
		var nums []float64
		for _, f := range fields[isinIdx+1:] {
			if isNumberToken(f) {
				nums = append(nums, extract.ParseNumber(f))
			}
		}
		if name == "" || len(nums) < 2 {
			continue
		}

		h := Holding{
			Symbol:      SanitizeSymbol(name),
			ISIN:        fields[isinIdx],
			Name:        name,
			Quantity:    nums[0],
			AvgPrice:    nums[1],
			HoldingType: holdingType,
			Source:      string(model.HoldingSourcePdf),
		}
		if len(nums) > 2 && nums[2] > 0 {
			cur := nums[2]
			h.CurrentPrice = &cur
		}
		holdings = append(holdings, h)
	}

	if len(holdings) > 0 {
		return holdings
	}

	// Fallback scan over the whole text.
	for _, m := range holdingsFallbackRe.FindAllStringSubmatch(text, -1) {
		if !tickerRe.MatchString(m[1]) {
			continue
		}
		holdings = append(holdings, Holding{
			Symbol:      m[1],
			Quantity:    extract.ParseNumber(m[2]),
			AvgPrice:    extract.ParseNumber(m[3]),
			HoldingType: holdingType,
			Source:      string(model.HoldingSourcePdf),
		})
	}

	return holdings
}

// holdingTypeFor maps a document sub-type to a holding type, defaulting to
// equity.
func holdingTypeFor(subType string) string {
	if subType == model.SubTypeMf {
		return string(model.HoldingTypeMf)
	}
	return string(model.HoldingTypeEquity)
}

// cell returns row[i] or "" when the row is too short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
