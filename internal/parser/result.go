package parser

// Result kinds, one per document category.
const (
	KindHoldings     = "holdings"
	KindPnL          = "pnl"
	KindTax          = "tax"
	KindTransactions = "transactions"
	KindDividend     = "dividend"
	KindGeneric      = "generic"
)

// Result is the type-tagged output of a parser. Only the fields belonging to
// the tagged kind are populated. A Result is transient: it is never persisted
// verbatim except as the statement's parse payload cache.
type Result struct {
	Kind string `json:"kind"`

	// KindHoldings
	Holdings []Holding `json:"holdings,omitempty"`

	// KindPnL
	Summary          *PnLSummary `json:"summary,omitempty"`
	RealisedTrades   []Trade     `json:"realisedTrades,omitempty"`
	UnrealisedTrades []Trade     `json:"unrealisedTrades,omitempty"`

	// KindTax
	TaxSummary     *TaxSummary     `json:"taxSummary,omitempty"`
	CapitalGains   []CapitalGain   `json:"capitalGains,omitempty"`
	ElssDeductions []ElssDeduction `json:"elssDeductions,omitempty"`

	// KindTransactions
	Transactions   []Transaction `json:"transactions,omitempty"`
	OpeningBalance float64       `json:"openingBalance,omitempty"`
	ClosingBalance float64       `json:"closingBalance,omitempty"`

	// KindDividend
	Dividends     []Dividend `json:"dividends,omitempty"`
	TotalDividend float64    `json:"totalDividend,omitempty"`

	// KindGeneric
	Extracted map[string]string `json:"extracted,omitempty"`
	RawLines  []string          `json:"rawLines,omitempty"`
}

// Holding is one parsed position. Source is always "pdf" regardless of the
// file format, marking document-derived provenance.
type Holding struct {
	Symbol       string   `json:"symbol"`
	ISIN         string   `json:"isin,omitempty"`
	Name         string   `json:"name,omitempty"`
	Quantity     float64  `json:"quantity"`
	AvgPrice     float64  `json:"avgPrice"`
	CurrentPrice *float64 `json:"currentPrice,omitempty"`
	HoldingType  string   `json:"holdingType"`
	Source       string   `json:"source"`
}

// PnLSummary carries the document-level profit and loss figures.
type PnLSummary struct {
	Realised   float64 `json:"realised"`
	Unrealised float64 `json:"unrealised"`
	Dividend   float64 `json:"dividend"`
	Intraday   float64 `json:"intraday"`
	Fno        float64 `json:"fno"`
	Charges    float64 `json:"charges"`
}

// Empty reports whether no summary figure was extracted.
func (s *PnLSummary) Empty() bool {
	if s == nil {
		return true
	}
	return s.Realised == 0 && s.Unrealised == 0 && s.Dividend == 0 &&
		s.Intraday == 0 && s.Fno == 0 && s.Charges == 0
}

// Trade is one realised or unrealised trade line from a P&L statement.
type Trade struct {
	Symbol   string  `json:"symbol"`
	ISIN     string  `json:"isin,omitempty"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Date     string  `json:"date,omitempty"`
	PnL      float64 `json:"pnl"`
}

// TaxSummary carries the capital gains figures of a tax statement.
type TaxSummary struct {
	STCG     float64 `json:"stcg"`
	LTCG     float64 `json:"ltcg"`
	Intraday float64 `json:"intraday"`
}

// Empty reports whether no tax figure was extracted.
func (s *TaxSummary) Empty() bool {
	if s == nil {
		return true
	}
	return s.STCG == 0 && s.LTCG == 0 && s.Intraday == 0
}

// CapitalGain is one approximate capital-gains line.
type CapitalGain struct {
	Line   string  `json:"line"`
	Amount float64 `json:"amount"`
}

// ElssDeduction is one ELSS fund investment eligible for deduction.
type ElssDeduction struct {
	FundName string  `json:"fundName"`
	Amount   float64 `json:"amount"`
}

// Transaction is one parsed buy/sell row. Type carries the raw statement
// token (BUY, SIP, REDEMPTION, ...); normalization happens during
// reconciliation. Balance is only set for balance-statement rows.
type Transaction struct {
	Type      string  `json:"type"`
	AssetType string  `json:"assetType"`
	Symbol    string  `json:"symbol,omitempty"`
	Name      string  `json:"name,omitempty"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	Notes     string  `json:"notes,omitempty"`
	Balance   float64 `json:"balance,omitempty"`
}

// Dividend is one dividend credit line.
type Dividend struct {
	Company   string  `json:"company"`
	ISIN      string  `json:"isin,omitempty"`
	ExDate    string  `json:"exDate,omitempty"`
	Shares    float64 `json:"shares"`
	PerShare  float64 `json:"perShare"`
	NetAmount float64 `json:"netAmount"`
}
