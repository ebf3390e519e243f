package service

import (
	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/repository"
)

// PnLService exposes reconciled profit and loss records.
type PnLService struct {
	pnlRepo *repository.PnLRepository
}

// NewPnLService creates a new PnLService with the provided repository.
func NewPnLService(pnlRepo *repository.PnLRepository) *PnLService {
	return &PnLService{pnlRepo: pnlRepo}
}

// List returns all P&L records for a user, newest period first.
func (s *PnLService) List(userID string) ([]model.PnLRecord, error) {
	if userID == "" {
		userID = DefaultUserID
	}
	return s.pnlRepo.List(userID)
}
