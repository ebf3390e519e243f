package parser

import (
	"testing"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

func TestHoldingsParserRows(t *testing.T) {
	p := &HoldingsParser{}

	rows := [][]string{
		{"Groww Holdings Statement"},
		{},
		{"Stock Name", "ISIN", "Quantity", "Average Price", "Closing Price"},
		{"Reliance Industries", "INE002A01018", "10", "2,450.50", "2,800.00"},
		{"HDFC Bank", "INE040A01034", "5", "1500", "1650.25"},
		{"Zero Corp", "INE123A01016", "0", "10", "12"},
		{"Some footnote text", "not-an-isin", "x"},
		{"Total", "", "15"},
		{},
		{"Scheme Name", "ISIN", "Units", "Average NAV", "Current NAV"},
		{"Axis Bluechip Fund", "INF846K01EW2", "100.5", "45.67", "52.10"},
		{"Disclaimer: values are indicative"},
	}

	res, err := p.Parse(Input{Rows: rows})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res.Kind != KindHoldings {
		t.Fatalf("Expected kind %q, got %q", KindHoldings, res.Kind)
	}
	if len(res.Holdings) != 3 {
		t.Fatalf("Expected 3 holdings, got %d: %+v", len(res.Holdings), res.Holdings)
	}

	first := res.Holdings[0]
	if first.Symbol != "RELIANCE_INDUSTRIES" {
		t.Errorf("Expected symbol RELIANCE_INDUSTRIES, got %q", first.Symbol)
	}
	if first.ISIN != "INE002A01018" {
		t.Errorf("Expected ISIN INE002A01018, got %q", first.ISIN)
	}
	if first.Quantity != 10 {
		t.Errorf("Expected quantity 10, got %v", first.Quantity)
	}
	if first.AvgPrice != 2450.50 {
		t.Errorf("Expected avg price 2450.50, got %v", first.AvgPrice)
	}
	if first.CurrentPrice == nil || *first.CurrentPrice != 2800 {
		t.Errorf("Expected current price 2800, got %v", first.CurrentPrice)
	}
	if first.HoldingType != string(model.HoldingTypeEquity) {
		t.Errorf("Expected equity holding, got %q", first.HoldingType)
	}
	if first.Source != string(model.HoldingSourcePdf) {
		t.Errorf("Expected pdf source, got %q", first.Source)
	}

	mf := res.Holdings[2]
	if mf.Symbol != "AXIS_BLUECHIP_FUND" {
		t.Errorf("Expected symbol AXIS_BLUECHIP_FUND, got %q", mf.Symbol)
	}
	if mf.HoldingType != string(model.HoldingTypeMf) {
		t.Errorf("Expected mf holding, got %q", mf.HoldingType)
	}
	if mf.Quantity != 100.5 {
		t.Errorf("Expected quantity 100.5, got %v", mf.Quantity)
	}
}

func TestHoldingsParserText(t *testing.T) {
	p := &HoldingsParser{}

	text := "Demat Holdings Statement\n" +
		"Reliance Industries  INE002A01018  10  2450.50  2800.00\n" +
		"HDFC Bank  INE040A01034  5  1500.00\n" +
		"Random narrative line without numbers\n"

	res, err := p.Parse(Input{Text: text})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Holdings) != 2 {
		t.Fatalf("Expected 2 holdings, got %d: %+v", len(res.Holdings), res.Holdings)
	}

	if res.Holdings[0].CurrentPrice == nil || *res.Holdings[0].CurrentPrice != 2800 {
		t.Errorf("Expected current price 2800, got %v", res.Holdings[0].CurrentPrice)
	}
	// Two numbers only: quantity and average price, no current price.
	if res.Holdings[1].CurrentPrice != nil {
		t.Errorf("Expected no current price, got %v", *res.Holdings[1].CurrentPrice)
	}
}

// Degraded PDFs lose their ISIN column; the loose ticker-quantity-price scan
// still recovers positions.
func TestHoldingsParserTextFallback(t *testing.T) {
	p := &HoldingsParser{}

	text := "Holdings\nTCS  10  ₹3,500.00\nINFY  25  1450.75\nnot a holding line\n"

	res, err := p.Parse(Input{Text: text})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Holdings) != 2 {
		t.Fatalf("Expected 2 holdings from fallback scan, got %d: %+v", len(res.Holdings), res.Holdings)
	}
	if res.Holdings[0].Symbol != "TCS" || res.Holdings[0].Quantity != 10 || res.Holdings[0].AvgPrice != 3500 {
		t.Errorf("Unexpected fallback holding: %+v", res.Holdings[0])
	}
}

func TestHoldingsParserEmptyInput(t *testing.T) {
	p := &HoldingsParser{}

	res, err := p.Parse(Input{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Holdings) != 0 {
		t.Errorf("Expected no holdings from empty input, got %d", len(res.Holdings))
	}
}
