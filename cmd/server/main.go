package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/formesean/tilltally/config"
	"github.com/formesean/tilltally/internal/cart"
	"github.com/formesean/tilltally/internal/catalog"
	"github.com/formesean/tilltally/internal/checkout"
	"github.com/formesean/tilltally/internal/handler"
	"github.com/formesean/tilltally/internal/ledger"
	"github.com/formesean/tilltally/pkg/storage"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	logger, err := newLogger(config.AppConfig.Server.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// 2. Open local storage
	store, err := openStorage(config.AppConfig.Storage)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}

	// 3. Load the catalog feeds
	cat, err := catalog.Load(
		config.AppConfig.Catalog.ProductsPath,
		config.AppConfig.Catalog.CodesPath,
		logger,
	)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}

	// 4. Rehydrate session state
	cartStore := cart.NewStore(store, logger)
	txLedger := ledger.New(store, logger)
	recorder := checkout.NewRecorder(cartStore, txLedger, cat, logger)

	logger.Info("session state restored",
		zap.Int("cart_items", cartStore.Len()),
		zap.Int("transactions", txLedger.Len()))

	// 5. Initialize Router
	if config.AppConfig.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(r, handler.Deps{
		Catalog:  cat,
		Cart:     cartStore,
		Ledger:   txLedger,
		Recorder: recorder,
		Logger:   logger,
	})

	// 6. Start Server
	port := config.AppConfig.Server.Port
	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func openStorage(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Driver {
	case "sqlite":
		return storage.NewGormStore(cfg.DSN)
	default:
		return storage.NewFileStore(cfg.Dir)
	}
}
