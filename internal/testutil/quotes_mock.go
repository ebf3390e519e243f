package testutil

import (
	"context"
	"fmt"
)

// MockQuoteClient is a mock implementation of quotes.Client for testing.
// It returns predefined prices instead of making actual API calls.
type MockQuoteClient struct {
	// Prices maps symbol to the close price to return.
	Prices map[string]float64
	// Err is returned for every lookup when set.
	Err error
	// QueryCount tracks how many times LatestClose was called.
	QueryCount int
}

// NewMockQuoteClient creates a mock quote client with the given prices.
func NewMockQuoteClient(prices map[string]float64) *MockQuoteClient {
	return &MockQuoteClient{Prices: prices}
}

// LatestClose returns the configured price for the symbol. Unknown symbols
// return an error, mirroring the real client's behavior for unlisted tickers.
func (m *MockQuoteClient) LatestClose(_ context.Context, symbol string) (float64, error) {
	m.QueryCount++
	if m.Err != nil {
		return 0, m.Err
	}
	price, ok := m.Prices[symbol]
	if !ok {
		return 0, fmt.Errorf("no quote data for symbol %s", symbol)
	}
	return price, nil
}

// WithError configures the mock to fail every lookup.
func (m *MockQuoteClient) WithError(err error) *MockQuoteClient {
	m.Err = err
	return m
}
