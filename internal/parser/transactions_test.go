package parser

import (
	"testing"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

func TestTransactionsParserStockOrders(t *testing.T) {
	p := &TransactionsParser{}

	rows := [][]string{
		{"Stock Order History"},
		{"Symbol", "ISIN", "Type", "Quantity", "Price", "Amount", "Date"},
		{"RELIANCE", "INE002A01018", "BUY", "10", "2,450.00", "24,500.00", "01-04-2024"},
		{"HDFCBANK", "INE040A01034", "SELL", "5", "1,500.00", "7,500.00", "15-05-2024"},
		{"TATASTEEL", "INE081A01020", "DIVIDEND", "100.00", "", "", "15-06-2024"},
		{"Total", "", "", "", "", "32,000.00", ""},
	}

	res, err := p.Parse(Input{Rows: rows, SubType: model.SubTypeStocks})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res.Kind != KindTransactions {
		t.Fatalf("Expected kind %q, got %q", KindTransactions, res.Kind)
	}

	// The DIVIDEND row carries no recognized type token and is skipped.
	if len(res.Transactions) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(res.Transactions))
	}

	buy := res.Transactions[0]
	if buy.Type != "BUY" || buy.Name != "RELIANCE" || buy.Date != "01-04-2024" {
		t.Errorf("Unexpected buy transaction: %+v", buy)
	}
	if buy.Quantity != 10 || buy.Price != 2450 || buy.Amount != 24500 {
		t.Errorf("Unexpected buy figures: %+v", buy)
	}
	if buy.AssetType != string(model.AssetTypeStocks) {
		t.Errorf("Expected asset type %q, got %q", model.AssetTypeStocks, buy.AssetType)
	}

	sell := res.Transactions[1]
	if sell.Type != "SELL" || sell.Name != "HDFCBANK" {
		t.Errorf("Unexpected sell transaction: %+v", sell)
	}
}

func TestTransactionsParserMfOrders(t *testing.T) {
	p := &TransactionsParser{}

	rows := [][]string{
		{"Scheme Name", "ISIN", "Type", "Units", "NAV", "Amount", "Date"},
		{"Axis Bluechip Fund", "INF846K01EW2", "SIP", "100.5", "45.50", "4,572.75", "05-04-2024"},
		{"Axis Bluechip Fund", "INF846K01EW2", "REDEMPTION", "50", "48.00", "2,400.00", "20-06-2024"},
	}

	res, err := p.Parse(Input{Rows: rows, SubType: model.SubTypeMf})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(res.Transactions) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(res.Transactions))
	}

	sip := res.Transactions[0]
	if sip.Type != "SIP" || sip.Name != "Axis Bluechip Fund" {
		t.Errorf("Unexpected SIP transaction: %+v", sip)
	}
	if sip.Quantity != 100.5 || sip.Price != 45.50 || sip.Amount != 4572.75 {
		t.Errorf("Unexpected SIP figures: %+v", sip)
	}
	if sip.AssetType != string(model.AssetTypeMf) {
		t.Errorf("Expected asset type %q, got %q", model.AssetTypeMf, sip.AssetType)
	}
}

func TestTransactionsParserBalanceStatement(t *testing.T) {
	p := &TransactionsParser{}

	// Ledger rows arrive newest first.
	rows := [][]string{
		{"Balance Statement"},
		{"Transaction Date", "Settlement Date", "Type", "Particulars", "Amount", "Balance"},
		{"15-05-2024", "17-05-2024", "SELL", "HDFCBANK shares", "7,500.00", "57,500.00"},
		{"12-04-2024", "14-04-2024", "CHARGES", "Ledger charges", "-10.00", "50,010.00"},
		{"10-04-2024", "12-04-2024", "BUY", "RELIANCE shares", "-24,500.00", "50,000.00"},
		{"Disclaimer: balances are indicative"},
	}

	res, err := p.Parse(Input{Rows: rows, SubType: model.SubTypeBalanceStatement})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// The CHARGES row carries no recognized type token and is skipped.
	if len(res.Transactions) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(res.Transactions))
	}

	if res.ClosingBalance != 57500 {
		t.Errorf("Expected closing balance 57500, got %v", res.ClosingBalance)
	}
	if res.OpeningBalance != 50000 {
		t.Errorf("Expected opening balance 50000, got %v", res.OpeningBalance)
	}

	sell := res.Transactions[0]
	if sell.Type != "SELL" || sell.Name != "HDFCBANK shares" || sell.Date != "15-05-2024" {
		t.Errorf("Unexpected sell entry: %+v", sell)
	}
	if sell.Amount != 7500 || sell.Balance != 57500 {
		t.Errorf("Unexpected sell figures: %+v", sell)
	}

	buy := res.Transactions[1]
	if buy.Amount != -24500 || buy.Balance != 50000 {
		t.Errorf("Unexpected buy figures: %+v", buy)
	}
}

func TestTransactionsParserText(t *testing.T) {
	p := &TransactionsParser{}

	text := "Order History\n" +
		"01-04-2024  BUY  RELIANCE  10  2,450.00  24,500.00\n" +
		"Order placed on 05-04-2024\n" +
		"Narrative line with no trade details\n"

	res, err := p.Parse(Input{Text: text})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(res.Transactions) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(res.Transactions))
	}
	tr := res.Transactions[0]
	if tr.Type != "BUY" || tr.Symbol != "RELIANCE" || tr.Date != "01-04-2024" {
		t.Errorf("Unexpected transaction: %+v", tr)
	}
	if tr.Quantity != 10 || tr.Price != 2450 || tr.Amount != 24500 {
		t.Errorf("Unexpected figures: %+v", tr)
	}
}

func TestTransactionsParserMfText(t *testing.T) {
	p := &TransactionsParser{}

	text := "05-04-2024  SIP  Axis Bluechip Fund  100.5  45.50\n"

	res, err := p.Parse(Input{Text: text, SubType: model.SubTypeMf})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(res.Transactions) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(res.Transactions))
	}
	tr := res.Transactions[0]
	if tr.Type != "SIP" || tr.Name != "Axis Bluechip Fund" {
		t.Errorf("Unexpected transaction: %+v", tr)
	}
	if tr.AssetType != string(model.AssetTypeMf) {
		t.Errorf("Expected asset type %q, got %q", model.AssetTypeMf, tr.AssetType)
	}
}
