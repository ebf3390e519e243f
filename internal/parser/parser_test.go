package parser

import (
	"testing"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name    string
		ext     string
		docType model.DocumentType
		subType string
		want    Parser
	}{
		{"exact match wins", ".pdf", model.DocumentTypePnL, model.SubTypeDividend, &DividendParser{}},
		{"sub-type falls back to type wildcard", ".pdf", model.DocumentTypePnL, model.SubTypeFno, &PnLParser{}},
		{"tax wildcard", ".xlsx", model.DocumentTypeTax, model.SubTypeCapitalGains, &TaxParser{}},
		{"transactions wildcard", ".xlsx", model.DocumentTypeTransactions, model.SubTypeBalanceStatement, &TransactionsParser{}},
		{"extension is case-insensitive", ".PDF", model.DocumentTypeTax, "", &TaxParser{}},
		{"unknown type falls back to holdings", ".pdf", model.DocumentType("statement"), "", &HoldingsParser{}},
		{"gst invoice uses the generic parser", ".pdf", model.DocumentTypeGSTInvoice, "", &GenericParser{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Lookup(tt.ext, tt.docType, tt.subType)
			if got == nil {
				t.Fatal("Lookup returned nil")
			}
			wantType := typeName(tt.want)
			gotType := typeName(got)
			if gotType != wantType {
				t.Errorf("Expected parser %s, got %s", wantType, gotType)
			}
		})
	}
}

func typeName(p Parser) string {
	switch p.(type) {
	case *HoldingsParser:
		return "holdings"
	case *PnLParser:
		return "pnl"
	case *DividendParser:
		return "dividend"
	case *TaxParser:
		return "tax"
	case *TransactionsParser:
		return "transactions"
	case *GenericParser:
		return "generic"
	default:
		return "unknown"
	}
}

func TestInputLines(t *testing.T) {
	t.Run("text input", func(t *testing.T) {
		in := Input{Text: "  first line  \n\n   \nsecond line\n"}
		lines := in.Lines()
		if len(lines) != 2 {
			t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
		}
		if lines[0] != "first line" || lines[1] != "second line" {
			t.Errorf("Unexpected lines: %v", lines)
		}
	})

	t.Run("row input", func(t *testing.T) {
		in := Input{Rows: [][]string{{"Total Charges", "450.75"}, {}, {"Disclaimer"}}}
		lines := in.Lines()
		if len(lines) != 2 {
			t.Fatalf("Expected 2 lines, got %d: %v", len(lines), lines)
		}
		if lines[0] != "Total Charges  450.75" {
			t.Errorf("Unexpected joined row: %q", lines[0])
		}
	})
}

func TestSanitizeSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Reliance Industries", "RELIANCE_INDUSTRIES"},
		{"  HDFC Bank Ltd.  ", "HDFC_BANK_LTD"},
		{"Axis Bluechip Fund - Direct Growth", "AXIS_BLUECHIP_FUND_D"},
		{"M&M", "M_M"},
		{"TCS", "TCS"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeSymbol(tt.in); got != tt.want {
			t.Errorf("SanitizeSymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitFields(t *testing.T) {
	fields := splitFields("ITC Ltd  INE154A01025\t12-07-2024   687.50")
	want := []string{"ITC Ltd", "INE154A01025", "12-07-2024", "687.50"}
	if len(fields) != len(want) {
		t.Fatalf("Expected %d fields, got %d: %v", len(want), len(fields), fields)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("Field %d: expected %q, got %q", i, want[i], fields[i])
		}
	}
}
