package model

// DocumentType identifies the broad category of an uploaded broker statement.
type DocumentType string

// Document types recognized by the parsing pipeline.
const (
	DocumentTypePnL          DocumentType = "pnl"
	DocumentTypeTax          DocumentType = "tax"
	DocumentTypeHoldings     DocumentType = "holdings"
	DocumentTypeTransactions DocumentType = "transactions"
	DocumentTypeGSTInvoice   DocumentType = "gst_invoice"
	DocumentTypeCMRCopy      DocumentType = "cmr_copy"
)

// Document sub-types. A sub-type is only meaningful within its parent type.
const (
	SubTypeStocks           = "stocks"
	SubTypeFno              = "fno"
	SubTypeDividend         = "dividend"
	SubTypeMfElss           = "mf_elss"
	SubTypeCapitalGains     = "capital_gains"
	SubTypeMf               = "mf"
	SubTypeDemat            = "demat"
	SubTypeBalanceStatement = "balance_statement"
)

// DocumentTypeEntry describes one taxonomy entry for the document-type catalog.
type DocumentTypeEntry struct {
	Type     DocumentType   `json:"type"`
	Label    string         `json:"label"`
	SubTypes []SubTypeEntry `json:"subTypes,omitempty"`
}

// SubTypeEntry describes one sub-type within a document type.
type SubTypeEntry struct {
	SubType string `json:"subType"`
	Label   string `json:"label"`
}

// documentTaxonomy is the closed enumeration of document types and their
// sub-types. This is static configuration, not derived from data.
var documentTaxonomy = []DocumentTypeEntry{
	{
		Type:  DocumentTypePnL,
		Label: "Profit & Loss",
		SubTypes: []SubTypeEntry{
			{SubTypeStocks, "Stocks P&L"},
			{SubTypeFno, "F&O P&L"},
			{SubTypeDividend, "Dividend Statement"},
		},
	},
	{
		Type:  DocumentTypeTax,
		Label: "Tax",
		SubTypes: []SubTypeEntry{
			{SubTypeMfElss, "ELSS Investment Proof"},
			{SubTypeCapitalGains, "Capital Gains Statement"},
			{SubTypeStocks, "Stocks Tax P&L"},
			{SubTypeMf, "Mutual Fund Tax Statement"},
			{SubTypeFno, "F&O Tax P&L"},
		},
	},
	{
		Type:  DocumentTypeHoldings,
		Label: "Holdings",
		SubTypes: []SubTypeEntry{
			{SubTypeMf, "Mutual Fund Holdings"},
			{SubTypeStocks, "Stock Holdings"},
			{SubTypeDemat, "Demat Holdings"},
		},
	},
	{
		Type:  DocumentTypeTransactions,
		Label: "Transactions",
		SubTypes: []SubTypeEntry{
			{SubTypeMf, "Mutual Fund Orders"},
			{SubTypeStocks, "Stock Orders"},
			{SubTypeBalanceStatement, "Balance Statement"},
		},
	},
	{Type: DocumentTypeGSTInvoice, Label: "GST Invoice"},
	{Type: DocumentTypeCMRCopy, Label: "CMR Copy"},
}

// DocumentTypeCatalog returns the full document-type taxonomy for populating
// a selection control.
func DocumentTypeCatalog() []DocumentTypeEntry {
	return documentTaxonomy
}

// ValidDocumentType reports whether t is a known document type.
func ValidDocumentType(t DocumentType) bool {
	for _, entry := range documentTaxonomy {
		if entry.Type == t {
			return true
		}
	}
	return false
}

// ValidSubType reports whether sub belongs to the declared sub-type set of t.
// An empty sub-type is always valid.
func ValidSubType(t DocumentType, sub string) bool {
	if sub == "" {
		return true
	}
	for _, entry := range documentTaxonomy {
		if entry.Type != t {
			continue
		}
		for _, st := range entry.SubTypes {
			if st.SubType == sub {
				return true
			}
		}
	}
	return false
}
