package reconcile

import (
	"testing"
	"time"
)

func TestFinancialYear(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"april starts the year", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), "2024-25"},
		{"march belongs to the prior year", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), "2023-24"},
		{"mid-year month", time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC), "2024-25"},
		{"january belongs to the prior year", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "2024-25"},
		{"decade rollover pads the suffix", time.Date(2029, 6, 1, 0, 0, 0, 0, time.UTC), "2029-30"},
		{"century rollover", time.Date(2099, 6, 1, 0, 0, 0, 0, time.UTC), "2099-00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FinancialYear(tt.date); got != tt.want {
				t.Errorf("FinancialYear(%s) = %q, want %q", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestTaxTotalsAdd(t *testing.T) {
	a := TaxTotals{STCG: 1000, LTCG: 2000, Intraday: -300, Elss: 50000}
	b := TaxTotals{STCG: 500, LTCG: 1500, Intraday: 100, Elss: 25000}

	got := a.Add(b)
	want := TaxTotals{STCG: 1500, LTCG: 3500, Intraday: -200, Elss: 75000}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}

	if zero := (TaxTotals{}).Add(TaxTotals{}); zero != (TaxTotals{}) {
		t.Errorf("Expected zero totals, got %+v", zero)
	}
}
