package main

import (
	"net/http"

	httphandlers "mybudget/internal/interfaces/http"
	"mybudget/internal/shared/config"
	"mybudget/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with
// middleware applied.
func SetupRoutes(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Auth
	mux.HandleFunc("/register", deps.AuthHandler.HandleRegister)
	mux.HandleFunc("/login", deps.AuthHandler.HandleLogin)

	// Wallets: GET /wallets/{id} lists by user id, DELETE by wallet id
	mux.HandleFunc("/wallets", deps.WalletHandler.HandleWallets)
	mux.HandleFunc("/wallets/{id}", deps.WalletHandler.HandleWalletByID)

	// Categories
	mux.HandleFunc("/categories", deps.CategoryHandler.HandleCategories)
	mux.HandleFunc("/categories/{id}", deps.CategoryHandler.HandleCategoryByID)

	// Transactions: GET /transactions/{id} lists by user id, PUT/DELETE by
	// transaction id
	mux.HandleFunc("/transactions", deps.TransactionHandler.HandleTransactions)
	mux.HandleFunc("/transactions/{id}", deps.TransactionHandler.HandleTransactionByID)

	// Dashboard
	mux.HandleFunc("/dashboard/{id}", deps.DashboardHandler.HandleDashboard)

	// Apply global middleware
	handler := middleware.Logging(middleware.CORS(mux))
	if cfg.Telemetry.Enabled {
		handler = middleware.Tracing(handler)
	}

	return handler
}
