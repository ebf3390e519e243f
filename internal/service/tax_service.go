package service

import (
	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/repository"
)

// TaxService exposes per-financial-year tax summaries.
type TaxService struct {
	taxRepo *repository.TaxRepository
}

// NewTaxService creates a new TaxService with the provided repository.
func NewTaxService(taxRepo *repository.TaxRepository) *TaxService {
	return &TaxService{taxRepo: taxRepo}
}

// List returns all tax records for a user, newest financial year first.
func (s *TaxService) List(userID string) ([]model.TaxRecord, error) {
	if userID == "" {
		userID = DefaultUserID
	}
	return s.taxRepo.List(userID)
}
