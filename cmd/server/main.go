package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blockpharma.backend/internal/config"
	"blockpharma.backend/internal/infrastructure/datasources/postgres"
	"blockpharma.backend/internal/infrastructure/repositories"
	"blockpharma.backend/internal/interfaces/http/handlers"
	"blockpharma.backend/internal/interfaces/http/middleware"
	"blockpharma.backend/internal/interfaces/http/validation"
	"blockpharma.backend/internal/usecases"
	"blockpharma.backend/pkg/jwt"
	"blockpharma.backend/pkg/logger"
	"blockpharma.backend/pkg/metrics"
	"blockpharma.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, func() error, error) {
		sqlDB, err := postgres.NewConnection(cfg)
		if err != nil {
			return nil, nil, err
		}
		db, err := postgres.NewGormDB(sqlDB)
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		return db, sqlDB.Close, nil
	}
	migrate   = postgres.Migrate
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	switch {
	case cfg.Redis.URL == "":
		logger.Warn(ctx, "REDIS_URL not set, idempotency keys are not enforced")
	default:
		if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
			// orders are still accepted, only replay protection is lost
			logger.Warn(ctx, "Redis unavailable, idempotency keys are not enforced", zap.Error(err))
			_ = redis.Close()
			redis.SetClient(nil)
		} else {
			logger.Info(ctx, "Redis initialized")
		}
	}
	defer redis.Close()

	if err := validation.Register(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, closeDB, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDB()
	logger.Info(ctx, "Connected to PostgreSQL", zap.String("database", cfg.Database.DBName))

	if cfg.Database.AutoMigrate {
		if err := migrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info(ctx, "Database schema migrated")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	addressRepo := repositories.NewAddressRepository(db)
	vendorRepo := repositories.NewVendorOrganizationRepository(db)
	outletRepo := repositories.NewPharmacyOutletRepository(db)
	productRepo := repositories.NewProductRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	recordRepo := repositories.NewBlockchainRecordRepository(db)
	countsRepo := repositories.NewCountsRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	userUsecase := usecases.NewUserUsecase(userRepo, addressRepo, uow, jwtService)
	vendorUsecase := usecases.NewVendorUsecase(vendorRepo, userRepo)
	pharmacyUsecase := usecases.NewPharmacyUsecase(outletRepo, userRepo)
	productUsecase := usecases.NewProductUsecase(productRepo, vendorRepo, uow)
	inventoryUsecase := usecases.NewInventoryUsecase(inventoryRepo, outletRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, recordRepo, outletRepo, vendorRepo, uow, cfg.Orders.StrictTransitions)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(metrics.GinMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIRoutes(r, routeDeps{
		userHandler:      handlers.NewUserHandler(userUsecase),
		vendorHandler:    handlers.NewVendorHandler(vendorUsecase),
		pharmacyHandler:  handlers.NewPharmacyHandler(pharmacyUsecase),
		productHandler:   handlers.NewProductHandler(productUsecase),
		inventoryHandler: handlers.NewInventoryHandler(inventoryUsecase),
		orderHandler:     handlers.NewOrderHandler(orderUsecase),
		countsHandler:    handlers.NewCountsHandler(countsRepo),
		authMiddleware:   middleware.AuthMiddleware(jwtService),
		idempotencyTTL:   cfg.Redis.IdempotencyTTL,
	})

	logger.Info(ctx, "BlockPharma backend starting",
		zap.String("port", cfg.Server.Port),
		zap.Int("routes", len(r.Routes())),
		zap.Bool("strictTransitions", cfg.Orders.StrictTransitions),
	)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
