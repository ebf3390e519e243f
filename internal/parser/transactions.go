package parser

import (
	"strings"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/extract"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

// TransactionsParser extracts buy/sell events from order-history and
// balance statements. Stock, mutual fund, and balance-statement layouts
// carry their columns in different positions.
type TransactionsParser struct{}

// recognizedTypeTokens are the only accepted transaction type tokens. A row
// with any other token is skipped, not recorded.
var recognizedTypeTokens = map[string]bool{
	"BUY":        true,
	"SELL":       true,
	"PURCHASE":   true,
	"SIP":        true,
	"REDEMPTION": true,
}

// typeToken returns the row's recognized type token, or "" when none of the
// cells carries one.
func typeToken(cells []string) string {
	for _, c := range cells {
		token := strings.ToUpper(strings.TrimSpace(c))
		if recognizedTypeTokens[token] {
			return token
		}
	}
	return ""
}

// Parse extracts transactions from XLSX rows or PDF text.
func (p *TransactionsParser) Parse(in Input) (*Result, error) {
	res := &Result{Kind: KindTransactions}

	if len(in.Rows) > 0 {
		switch in.SubType {
		case model.SubTypeBalanceStatement:
			p.parseBalanceRows(in.Rows, res)
		case model.SubTypeMf:
			p.parseOrderRows(in.Rows, res, string(model.AssetTypeMf), "Scheme Name")
		default:
			p.parseOrderRows(in.Rows, res, string(model.AssetTypeStocks), "Symbol", "Stock Name")
		}
	} else {
		p.parseText(in.Text, in.SubType, res)
	}

	return res, nil
}

// parseOrderRows handles the stock and mutual fund order layouts. The
// instrument column is located from the header row by one of the given
// labels; date, quantity, price, and amount are classified by shape.
func (p *TransactionsParser) parseOrderRows(rows [][]string, res *Result, assetType string, nameLabels ...string) {
	inSection := false
	nameCol := 1

	for _, row := range rows {
		if col := findColumn(row, nameLabels...); col >= 0 && headerHasColumn(row, "Type") {
			inSection = true
			nameCol = col
			continue
		}
		if !inSection {
			continue
		}
		if len(row) == 0 || row[0] == "" ||
			strings.HasPrefix(strings.ToLower(row[0]), "disclaimer") ||
			strings.HasPrefix(strings.ToLower(row[0]), "total") {
			inSection = false
			continue
		}

		token := typeToken(row)
		if token == "" {
			continue
		}

		t := Transaction{
			Type:      token,
			AssetType: assetType,
			Name:      cell(row, nameCol),
		}

		var nums []float64
		for i, c := range row {
			switch {
			case i == nameCol:
			case dateTokenRe.MatchString(c):
				if t.Date == "" {
					t.Date = dateTokenRe.FindString(c)
				}
			case isISIN(c):
			case tickerRe.MatchString(c) && t.Symbol == "" && !recognizedTypeTokens[c]:
				t.Symbol = c
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
			t.Amount = nums[2]
		}

		if t.Date == "" || (t.Symbol == "" && t.Name == "") {
			continue
		}
		res.Transactions = append(res.Transactions, t)
	}
}

// parseBalanceRows handles the ledger-style balance statement: rows between
// the "Transaction Date"/"Settlement Date" header and the disclaimer
// trailer, newest first. The closing balance is the first row's balance and
// the opening balance is the last row's.
func (p *TransactionsParser) parseBalanceRows(rows [][]string, res *Result) {
	inSection := false
	dateCol, nameCol, amountCol, balanceCol := 0, 2, 3, 4

	for _, row := range rows {
		if rowHasPrefix(row, "Transaction Date", "Settlement Date") {
			inSection = true
			if c := findColumn(row, "Particulars", "Description"); c >= 0 {
				nameCol = c
			}
			if c := findColumn(row, "Amount", "Debit"); c >= 0 {
				amountCol = c
			}
			if c := findColumn(row, "Balance"); c >= 0 {
				balanceCol = c
			}
			continue
		}
		if !inSection {
			continue
		}
		if len(row) == 0 || row[0] == "" ||
			strings.HasPrefix(strings.ToLower(row[0]), "disclaimer") {
			inSection = false
			continue
		}

		token := typeToken(row)
		if token == "" {
			continue
		}

		balance := extract.ParseNumber(cell(row, balanceCol))
		t := Transaction{
			Type:      token,
			AssetType: string(model.AssetTypeStocks),
			Name:      cell(row, nameCol),
			Amount:    extract.ParseNumber(cell(row, amountCol)),
			Date:      cell(row, dateCol),
			Balance:   balance,
		}
		if res.Transactions == nil {
			res.ClosingBalance = balance
		}
		res.OpeningBalance = balance
		res.Transactions = append(res.Transactions, t)
	}
}

// parseText runs the free-text heuristic over PDF content: a line with a
// date-like token is a candidate record; its fields are classified by shape
// into named slots. A record missing its mandatory slots (date plus
// instrument identity) is discarded.
func (p *TransactionsParser) parseText(text, subType string, res *Result) {
	assetType := string(model.AssetTypeStocks)
	if subType == model.SubTypeMf {
		assetType = string(model.AssetTypeMf)
	}

	for _, line := range strings.Split(text, "\n") {
		if !dateTokenRe.MatchString(line) {
			continue
		}

		t := Transaction{AssetType: assetType}
		var nums []float64
		var nameParts []string

		for _, f := range splitFields(line) {
			upper := strings.ToUpper(f)
			switch {
			case recognizedTypeTokens[upper]:
				t.Type = upper
			case dateTokenRe.MatchString(f):
				if t.Date == "" {
					t.Date = dateTokenRe.FindString(f)
				}
			case isISIN(f):
				t.Symbol = f
			case isNumberToken(f):
				nums = append(nums, extract.ParseNumber(f))
			case tickerRe.MatchString(f) && t.Symbol == "":
				t.Symbol = f
			default:
				nameParts = append(nameParts, f)
			}
		}

		t.Name = strings.Join(nameParts, " ")
		if len(nums) > 0 {
			t.Quantity = nums[0]
		}
		if len(nums) > 1 {
			t.Price = nums[1]
		}
		if len(nums) > 2 {
			t.Amount = nums[2]
		}

		if t.Type == "" || t.Date == "" || (t.Symbol == "" && t.Name == "") {
			continue
		}
		res.Transactions = append(res.Transactions, t)
	}
}

// findColumn returns the index of the first header cell equal to one of the
// labels, or -1.
func findColumn(row []string, labels ...string) int {
	for i, c := range row {
		for _, label := range labels {
			if strings.EqualFold(strings.TrimSpace(c), label) {
				return i
			}
		}
	}
	return -1
}
