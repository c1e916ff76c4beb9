package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shopstack/inventory-api/internal/auth"
	"github.com/shopstack/inventory-api/internal/config"
	"github.com/shopstack/inventory-api/internal/database"
	"github.com/shopstack/inventory-api/internal/handlers"
	"github.com/shopstack/inventory-api/internal/routes"
	"github.com/shopstack/inventory-api/internal/services"
	"github.com/shopstack/inventory-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.DSN == "" {
		logger.Fatal("DB_DSN environment variable is not set")
	}
	if cfg.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET environment variable is not set")
	}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("database connection pool established")

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)

	app := &handlers.Handlers{
		Customers: services.NewCustomerService(store.NewCustomerRepository(db), logger),
		Users:     services.NewUserService(store.NewUserRepository(db), logger),
		Inventory: services.NewInventoryService(store.NewInventoryRepository(db), logger),
		Purchases: services.NewPurchaseService(store.NewPurchaseRepository(db), logger),
		Tokens:    tokens,
		Log:       logger,
	}

	router := routes.SetupRouter(app, tokens, logger)

	logger.Info("starting inventory API server", zap.String("addr", cfg.ServerAddr))
	if err := router.Run(cfg.ServerAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = lvl
	return zapCfg.Build()
}
