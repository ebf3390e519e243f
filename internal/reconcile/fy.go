package reconcile

import (
	"fmt"
	"time"
)

// FinancialYear returns the Indian financial year (April-March) containing
// t, formatted like "2024-25".
func FinancialYear(t time.Time) string {
	start := t.Year()
	if t.Month() < time.April {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// TaxTotals is the additive portion of a tax reconciliation. Combining
// totals is a pure operation so the merge step can be tested in isolation.
type TaxTotals struct {
	STCG     float64
	LTCG     float64
	Intraday float64
	Elss     float64
}

// Add combines two totals.
func (t TaxTotals) Add(u TaxTotals) TaxTotals {
	return TaxTotals{
		STCG:     t.STCG + u.STCG,
		LTCG:     t.LTCG + u.LTCG,
		Intraday: t.Intraday + u.Intraday,
		Elss:     t.Elss + u.Elss,
	}
}
