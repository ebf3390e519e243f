package handlers

import (
	"net/http"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/api/response"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/service"
)

// RecordHandler handles HTTP requests for the reconciled record read
// endpoints: P&L records, tax summaries, and trade transactions.
type RecordHandler struct {
	pnlService         *service.PnLService
	taxService         *service.TaxService
	transactionService *service.TransactionService
}

// NewRecordHandler creates a new RecordHandler with the provided service dependencies.
func NewRecordHandler(
	pnlService *service.PnLService,
	taxService *service.TaxService,
	transactionService *service.TransactionService,
) *RecordHandler {
	return &RecordHandler{
		pnlService:         pnlService,
		taxService:         taxService,
		transactionService: transactionService,
	}
}

// PnLRecords handles GET requests to list a user's P&L records.
//
// Endpoint: GET /api/pnl/?user_id=
// Response: 200 OK with array of PnLRecord
// Error: 500 Internal Server Error if retrieval fails
func (h *RecordHandler) PnLRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.pnlService.List(userID(r))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve P&L records", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, records)
}

// TaxRecords handles GET requests to list a user's tax records.
//
// Endpoint: GET /api/tax/?user_id=
// Response: 200 OK with array of TaxRecord
// Error: 500 Internal Server Error if retrieval fails
func (h *RecordHandler) TaxRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.taxService.List(userID(r))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve tax records", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, records)
}

// Transactions handles GET requests to list a user's trade transactions.
//
// Endpoint: GET /api/transaction/?user_id=
// Response: 200 OK with array of Transaction
// Error: 500 Internal Server Error if retrieval fails
func (h *RecordHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.transactionService.List(userID(r))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve transactions", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}
