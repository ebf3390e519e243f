package service

import (
	"context"
	"log"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/model"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/quotes"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/repository"
)

// HoldingService handles holding queries and current-price refresh.
type HoldingService struct {
	holdingRepo *repository.HoldingRepository
	quoteClient quotes.Client
}

// NewHoldingService creates a new HoldingService with the provided dependencies.
func NewHoldingService(
	holdingRepo *repository.HoldingRepository,
	quoteClient quotes.Client,
) *HoldingService {
	return &HoldingService{
		holdingRepo: holdingRepo,
		quoteClient: quoteClient,
	}
}

// List returns all holdings for a user.
func (s *HoldingService) List(userID string) ([]model.Holding, error) {
	if userID == "" {
		userID = DefaultUserID
	}
	return s.holdingRepo.List(userID)
}

// RefreshPrices fetches the latest close price for every equity holding of
// the user and stores it as the current price. Mutual fund positions are
// skipped; the quote source does not cover them. Individual lookup failures
// are collected, not fatal.
func (s *HoldingService) RefreshPrices(ctx context.Context, userID string) (*model.PriceRefreshResult, error) {
	if userID == "" {
		userID = DefaultUserID
	}

	holdings, err := s.holdingRepo.ListByType(userID, model.HoldingTypeEquity)
	if err != nil {
		return nil, err
	}

	result := &model.PriceRefreshResult{}
	for _, h := range holdings {
		price, err := s.quoteClient.LatestClose(ctx, h.Symbol)
		if err != nil {
			log.Printf("price lookup failed for %s: %v", h.Symbol, err)
			result.Errors = append(result.Errors, model.PriceRefreshError{Symbol: h.Symbol, Error: err.Error()})
			continue
		}
		if err := s.holdingRepo.UpdateCurrentPrice(h.ID, price); err != nil {
			result.Errors = append(result.Errors, model.PriceRefreshError{Symbol: h.Symbol, Error: err.Error()})
			continue
		}
		result.TotalUpdated++
	}

	result.TotalErrors = len(result.Errors)
	result.Success = result.TotalUpdated > 0
	return result, nil
}
