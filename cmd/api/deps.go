package main

import (
	"log"

	"mybudget/internal/infrastructure/postgres"
	httphandlers "mybudget/internal/interfaces/http"
	"mybudget/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	AuthHandler        *httphandlers.AuthHandler
	WalletHandler      *httphandlers.WalletHandler
	CategoryHandler    *httphandlers.CategoryHandler
	TransactionHandler *httphandlers.TransactionHandler
	DashboardHandler   *httphandlers.DashboardHandler

	// Repositories (for the reconciler job provider)
	WalletRepo *postgres.WalletRepository
}

// NewDependencies initializes all application dependencies.
func NewDependencies(cfg *config.Config) (*Dependencies, error) {
	// Connect to database
	db, err := postgres.New(cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}
	log.Println("Connected to database")

	// Apply schema migrations
	if err := postgres.RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	walletRepo := postgres.NewWalletRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	reportRepo := postgres.NewReportRepository(db)

	return &Dependencies{
		DB:                 db,
		AuthHandler:        httphandlers.NewAuthHandler(userRepo),
		WalletHandler:      httphandlers.NewWalletHandler(walletRepo),
		CategoryHandler:    httphandlers.NewCategoryHandler(categoryRepo),
		TransactionHandler: httphandlers.NewTransactionHandler(transactionRepo),
		DashboardHandler:   httphandlers.NewDashboardHandler(reportRepo),
		WalletRepo:         walletRepo,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}
