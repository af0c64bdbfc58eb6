package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/product-service/internal/domain"
	"github.com/kahvecikaan/product-service/internal/events"
	"github.com/kahvecikaan/product-service/internal/repository"
	"github.com/kahvecikaan/product-service/internal/service"
	httpTransport "github.com/kahvecikaan/product-service/internal/transport/http"
	websocketTransport "github.com/kahvecikaan/product-service/internal/transport/websocket"
	"github.com/nicholasjackson/env"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	apiKey = env.String("API_KEY", false,
		"", "Shared secret required on mutating routes; empty rejects all of them")
)

func main() {
	env.Parse()

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "product-service",
		Level: hclog.LevelFromString(*logLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	if *apiKey == "" {
		logger.Warn("API_KEY is not set; all mutating requests will be rejected")
	}

	// Event bus shared by the service, the websocket feed and the audit log
	eventBus := events.NewEventBus[any]()

	// Initialize the ProductRepository and seed the catalog
	prodRep := repository.NewMemoryProductRepository()
	seedProducts(prodRep, logger)

	// Initialize the ProductService
	ps := service.NewProductService(
		prodRep,
		eventBus,
		logger.Named("product-service"),
	)

	// Initialize the validator
	validation := domain.NewValidation()

	// Initialize HTTP handlers and middleware
	ph := httpTransport.NewProductHandler(ps, validation, logger.Named("http-handler"))
	mw := httpTransport.NewMiddleware(logger.Named("middleware"), *apiKey)

	// Initialize the WebSocket handler with the event bus
	wh := websocketTransport.NewHandler(
		logger.Named("websocket-handler"),
		eventBus,
	)

	// Initialize the router
	router := httpTransport.NewRouter(ph, mw, wh)

	// Audit subscriber: one log line per product change event
	auditLogger := logger.Named("audit")
	auditSub := eventBus.Subscribe()
	go func() {
		for event := range auditSub {
			switch e := event.(type) {
			case events.ProductCreated:
				auditLogger.Info("Product created", "id", e.ProductID)
			case events.ProductUpdated:
				auditLogger.Info("Product updated", "id", e.ProductID)
			case events.ProductDeleted:
				auditLogger.Info("Product deleted", "id", e.ProductID)
			}
		}
	}()

	// Create the HTTP Server
	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	eventBus.Unsubscribe(auditSub)
	server.Shutdown(shutdownCtx)
}

// seedProducts loads a small sample catalog so the API has data on a fresh
// start. IDs are assigned here because uniqueness is the caller's contract.
func seedProducts(repo repository.ProductRepository, logger hclog.Logger) {
	samples := []*domain.Product{
		{
			Name:        "Latte",
			Description: "Frothy milky coffee",
			Price:       2.45,
			Category:    "coffee",
			InStock:     true,
		},
		{
			Name:        "Espresso",
			Description: "Short and strong coffee without milk",
			Price:       1.99,
			Category:    "coffee",
			InStock:     true,
		},
		{
			Name:        "Coffee Grinder",
			Description: "Conical burr grinder with 40 settings",
			Price:       59.90,
			Category:    "equipment",
			InStock:     false,
		},
	}

	ctx := context.Background()
	for _, p := range samples {
		p.ID = uuid.NewString()
		if err := repo.Add(ctx, p); err != nil {
			logger.Error("Unable to seed product", "name", p.Name, "error", err)
		}
	}
}
