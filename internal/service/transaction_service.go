package service

import (
	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/repository"
)

// TransactionService exposes reconciled trade transactions.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService with the provided repository.
func NewTransactionService(transactionRepo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// List returns all transactions for a user, newest first.
func (s *TransactionService) List(userID string) ([]model.Transaction, error) {
	if userID == "" {
		userID = DefaultUserID
	}
	return s.transactionRepo.List(userID)
}
