package model

import "time"

// TaxRecord represents tax figures for one user and one financial year
// (April-March). The year is unique per user; amounts are additive across
// statements covering the same year.
type TaxRecord struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	FinancialYear string    `json:"financialYear"`
	STCG          float64   `json:"stcg"`
	LTCG          float64   `json:"ltcg"`
	IntradayGains float64   `json:"intradayGains"`
	ElssDeduction float64   `json:"elssDeduction"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
