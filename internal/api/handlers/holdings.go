package handlers

import (
	"net/http"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/api/response"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/service"
)

// HoldingHandler handles HTTP requests for holding endpoints.
type HoldingHandler struct {
	holdingService *service.HoldingService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependency.
func NewHoldingHandler(holdingService *service.HoldingService) *HoldingHandler {
	return &HoldingHandler{
		holdingService: holdingService,
	}
}

// Holdings handles GET requests to list a user's holdings.
//
// Endpoint: GET /api/holding/?user_id=
// Response: 200 OK with array of Holding
// Error: 500 Internal Server Error if retrieval fails
func (h *HoldingHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.holdingService.List(userID(r))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve holdings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, holdings)
}

// RefreshPrices handles POST requests to refresh current prices of the
// user's equity holdings from the quote source. Lookup failures for
// individual symbols are reported in the result, not as an error status.
//
// Endpoint: POST /api/holding/refresh-prices?user_id=
// Response: 200 OK with PriceRefreshResult
// Error: 500 Internal Server Error if the holdings cannot be loaded
func (h *HoldingHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	result, err := h.holdingService.RefreshPrices(r.Context(), userID(r))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to refresh prices", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
