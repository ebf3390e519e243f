package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/api/handlers"
	custommiddleware "github.com/wealthdesk/Broker-Statement-Backend/internal/api/middleware"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/config"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/service"
)

// Services bundles the service dependencies of the HTTP layer.
type Services struct {
	System      *service.SystemService
	Statement   *service.StatementService
	Holding     *service.HoldingService
	PnL         *service.PnLService
	Tax         *service.TaxService
	Transaction *service.TransactionService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/statement", func(r chi.Router) {
			statementHandler := handlers.NewStatementHandler(svc.Statement, cfg.Upload.MaxBytes)
			r.Get("/", statementHandler.Statements)
			r.Post("/upload", statementHandler.Upload)
			r.Get("/document-types", statementHandler.DocumentTypes)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", statementHandler.GetStatement)
				r.Post("/retry", statementHandler.RetryStatement)
				r.Put("/status", statementHandler.SetStatementStatus)
			})
		})

		r.Route("/holding", func(r chi.Router) {
			holdingHandler := handlers.NewHoldingHandler(svc.Holding)
			r.Get("/", holdingHandler.Holdings)
			r.Post("/refresh-prices", holdingHandler.RefreshPrices)
		})

		recordHandler := handlers.NewRecordHandler(svc.PnL, svc.Tax, svc.Transaction)
		r.Route("/pnl", func(r chi.Router) {
			r.Get("/", recordHandler.PnLRecords)
		})
		r.Route("/tax", func(r chi.Router) {
			r.Get("/", recordHandler.TaxRecords)
		})
		r.Route("/transaction", func(r chi.Router) {
			r.Get("/", recordHandler.Transactions)
		})
	})

	return r
}
