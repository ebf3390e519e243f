package parser

import (
	"fmt"
	"strings"
	"testing"
)

func TestGenericParserInvoice(t *testing.T) {
	p := &GenericParser{}

	text := "Tax Invoice\n" +
		"Invoice No: GRW-INV-001234\n" +
		"Invoice Date: 15-07-2024\n" +
		"Total Amount: ₹354.00\n"

	res, err := p.Parse(Input{Text: text})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if res.Kind != KindGeneric {
		t.Fatalf("Expected kind %q, got %q", KindGeneric, res.Kind)
	}

	if got := res.Extracted["invoice_number"]; got != "GRW-INV-001234" {
		t.Errorf("Expected invoice number GRW-INV-001234, got %q", got)
	}
	if got := res.Extracted["date"]; got != "15-07-2024" {
		t.Errorf("Expected date 15-07-2024, got %q", got)
	}
	if got := res.Extracted["amount"]; got != "354.00" {
		t.Errorf("Expected amount 354.00, got %q", got)
	}

	if len(res.RawLines) != 4 {
		t.Errorf("Expected 4 raw lines, got %d", len(res.RawLines))
	}
}

func TestGenericParserMissingFields(t *testing.T) {
	p := &GenericParser{}

	res, err := p.Parse(Input{Text: "Client Master Report\nDP ID 12081600\n"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.Extracted) != 0 {
		t.Errorf("Expected no extracted fields, got %v", res.Extracted)
	}
	if len(res.RawLines) != 2 {
		t.Errorf("Expected 2 raw lines, got %d", len(res.RawLines))
	}
}

func TestGenericParserCapsRawLines(t *testing.T) {
	p := &GenericParser{}

	var b strings.Builder
	for i := 0; i < 80; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}

	res, err := p.Parse(Input{Text: b.String()})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(res.RawLines) != maxRawLines {
		t.Errorf("Expected %d raw lines, got %d", maxRawLines, len(res.RawLines))
	}
}
