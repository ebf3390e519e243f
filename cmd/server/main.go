package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/wealthdesk/Broker-Statement-Backend/internal/api"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/classify"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/config"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/database"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/filestore"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/job"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/parser"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/quotes"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/reconcile"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/repository"
	"github.com/wealthdesk/Broker-Statement-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Encrypted statement file store
	store, err := filestore.New(cfg.Upload.Dir, cfg.Upload.EncryptionKey)
	if err != nil {
		log.Fatalf("Failed to initialize file store: %v", err)
	}

	classifier, err := classify.New()
	if err != nil {
		log.Fatalf("Failed to load classifier rules: %v", err)
	}

	// Create repositories
	statementRepo := repository.NewStatementRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	pnlRepo := repository.NewPnLRepository(db)
	taxRepo := repository.NewTaxRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Parse pipeline
	registry := parser.NewRegistry()
	engine := reconcile.NewEngine(holdingRepo, pnlRepo, taxRepo, transactionRepo)
	runner := job.NewRunner(statementRepo, store, job.FileExtractor{}, registry, engine)

	jobCtx, jobCancel := context.WithCancel(context.Background())
	defer jobCancel()
	runner.Start(jobCtx, cfg.Jobs.Workers)

	// Create services
	systemService := service.NewSystemService(db)
	statementService := service.NewStatementService(statementRepo, store, classifier, runner)
	holdingService := service.NewHoldingService(holdingRepo, quotes.NewFinanceClient())
	pnlService := service.NewPnLService(pnlRepo)
	taxService := service.NewTaxService(taxRepo)
	transactionService := service.NewTransactionService(transactionRepo)

	// Scheduled jobs: stuck-statement recovery and nightly price refresh
	scheduler := cron.New()
	stuckAfter := time.Duration(cfg.Jobs.StuckAfterMin) * time.Minute
	if _, err := scheduler.AddFunc("*/5 * * * *", func() { runner.RequeueStuck(stuckAfter) }); err != nil {
		log.Fatalf("Failed to schedule stuck statement sweep: %v", err)
	}
	if _, err := scheduler.AddFunc(cfg.Jobs.PriceRefreshSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := holdingService.RefreshPrices(ctx, service.DefaultUserID); err != nil {
			log.Printf("Scheduled price refresh failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule price refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Statement:   statementService,
		Holding:     holdingService,
		PnL:         pnlService,
		Tax:         taxService,
		Transaction: transactionService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	jobCancel()

	log.Println("Server exited")
}
