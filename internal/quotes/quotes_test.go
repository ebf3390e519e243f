package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLatestClose(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v8/finance/chart/RELIANCE.NS") {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"chart":{"result":[{"meta":{"symbol":"RELIANCE.NS","regularMarketPrice":2845.30}}],"error":null}}`)
	}))
	defer server.Close()

	client := NewFinanceClientWithBaseURL(server.URL)

	price, err := client.LatestClose(context.Background(), "RELIANCE")
	if err != nil {
		t.Fatalf("LatestClose failed: %v", err)
	}
	if price != 2845.30 {
		t.Errorf("Expected price 2845.30, got %v", price)
	}
}

func TestLatestCloseEmptySymbol(t *testing.T) {
	client := NewFinanceClient()

	if _, err := client.LatestClose(context.Background(), ""); err == nil {
		t.Error("Expected error for empty symbol")
	}
}

func TestLatestCloseAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`)
	}))
	defer server.Close()

	client := NewFinanceClientWithBaseURL(server.URL)

	_, err := client.LatestClose(context.Background(), "DELISTED")
	if err == nil {
		t.Fatal("Expected error for delisted symbol")
	}
	if !strings.Contains(err.Error(), "symbol may be delisted") {
		t.Errorf("Expected API error description in error, got %v", err)
	}
}

func TestLatestCloseServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewFinanceClientWithBaseURL(server.URL)

	_, err := client.LatestClose(context.Background(), "RELIANCE")
	if err == nil {
		t.Fatal("Expected error for server failure")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("Expected status code in error, got %v", err)
	}
}

func TestLatestCloseNoResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"chart":{"result":[],"error":null}}`)
	}))
	defer server.Close()

	client := NewFinanceClientWithBaseURL(server.URL)

	if _, err := client.LatestClose(context.Background(), "RELIANCE"); err == nil {
		t.Error("Expected error when no result rows are returned")
	}
}
