package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"moto_portal/internal/assets"
	"moto_portal/internal/auth"
	"moto_portal/internal/config"
	"moto_portal/internal/handlers"
	"moto_portal/internal/imageprocessor"
	"moto_portal/internal/logger"
	"moto_portal/internal/middleware"
	"moto_portal/internal/routes"
	"moto_portal/internal/services"
	"moto_portal/internal/storage"
	"moto_portal/internal/validator"
	"moto_portal/internal/workers"
	"moto_portal/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	if err := config.LoadConfig(); err != nil {
		// логгер ещё не настроен
		logger.Init("production")
		logger.Fatal("Failed to load config", "error", err)
	}
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := OpenDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := Migrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
		logger.Info("Database schema migrated")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workers.NewImportLogWorker(gormDB,
		time.Duration(cfg.Workers.ImportLogRetentionDays)*24*time.Hour,
		time.Duration(cfg.Workers.PruneIntervalMinutes)*time.Minute,
	).Start(ctx)

	ginRouter, err := SetupRouter(cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	apperrors.DefaultHandler.Debug = cfg.Server.Debug
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := NewAssetStore(cfg)
	if err != nil {
		return nil, err
	}

	authorizer, err := NewAuthorizer(cfg)
	if err != nil {
		return nil, err
	}

	// 1. Сервисы
	serviceContainer := services.NewServiceContainer(store, authorizer)

	// 2. Хэндлеры
	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := handlers.NewAppHandlers(baseHandler, serviceContainer)

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Маршруты
	opts := routes.Options{
		UploadsURL: cfg.Storage.BaseURL,
		Swagger:    cfg.Server.Debug,
	}
	if cfg.Storage.Type == "" || cfg.Storage.Type == "local" {
		opts.UploadsDir = cfg.Storage.BasePath
	}
	routes.RegisterRoutes(ginRouter, appHandlers, authorizer, opts)

	return ginRouter, nil
}

// NewAssetStore создаёт хранилище файлов и политику загрузки из конфига
func NewAssetStore(cfg *config.Config) (*assets.Store, error) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	opts := assets.Options{
		MaxSize:            cfg.Upload.MaxSize,
		ImageExtensions:    cfg.Upload.ImageExtensions,
		DocumentExtensions: cfg.Upload.DocumentExtensions,
	}
	if cfg.Upload.OptimizeImages {
		opts.Optimizer = imageprocessor.NewProcessor(cfg.Upload.ImageQuality, cfg.Upload.MaxImageWidth, cfg.Upload.MaxImageHeight)
	}
	return assets.NewStore(storageInstance, opts), nil
}

// NewAuthorizer - вход по паролю администратора из конфига
func NewAuthorizer(cfg *config.Config) (auth.Authorizer, error) {
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	authorizer, err := auth.NewPasswordAuthorizer(cfg.Auth.AdminPassword, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize admin auth: %w", err)
	}
	return authorizer, nil
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))
	router.Use(middleware.DBMiddleware(db))
	// multipart целиком в памяти до лимита загрузки, остальное на диск
	router.MaxMultipartMemory = cfg.Upload.MaxSize
	return router
}
