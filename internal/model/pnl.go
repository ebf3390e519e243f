package model

import "time"

// PeriodType is the accounting period granularity of a P&L record.
type PeriodType string

// P&L period types.
const (
	PeriodTypeMonthly PeriodType = "monthly"
	PeriodTypeYearly  PeriodType = "yearly"
)

// PnLRecord represents one accounting period of profit and loss for a user.
// Records are created fresh per parsed statement; there is no merge across
// periods for this record type.
type PnLRecord struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	StatementID    string     `json:"statementId,omitempty"`
	PeriodType     PeriodType `json:"periodType"`
	PeriodStart    time.Time  `json:"periodStart"`
	RealisedPnL    float64    `json:"realisedPnl"`
	UnrealisedPnL  float64    `json:"unrealisedPnl"`
	DividendIncome float64    `json:"dividendIncome"`
	IntradayPnL    float64    `json:"intradayPnl"`
	FnoPnL         float64    `json:"fnoPnl"`
	TotalCharges   float64    `json:"totalCharges"`
	TotalPnL       float64    `json:"totalPnl"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ComputeTotal derives the total P&L as the sum of all components minus
// charges.
func (p *PnLRecord) ComputeTotal() {
	p.TotalPnL = p.RealisedPnL + p.UnrealisedPnL + p.DividendIncome +
		p.IntradayPnL + p.FnoPnL - p.TotalCharges
}
