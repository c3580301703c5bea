package routes

import (
	"moto_portal/internal/auth"
	"moto_portal/internal/handlers"
	"moto_portal/internal/logger"
	"moto_portal/internal/metrics"
	"moto_portal/internal/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options - параметры регистрации маршрутов, не относящиеся к хэндлерам
type Options struct {
	// UploadsDir - корень локального хранилища; пусто для s3/r2
	UploadsDir string
	// UploadsURL - префикс раздачи загруженных файлов
	UploadsURL string
	// Swagger включает /api/docs
	Swagger bool
}

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authorizer auth.Authorizer,
	opts Options,
) {
	ginRouter.GET("/health", appHandlers.HealthHandler.Health)
	ginRouter.GET("/metrics", gin.WrapH(metrics.Handler()))

	if opts.UploadsDir != "" {
		ginRouter.Static(opts.UploadsURL, opts.UploadsDir)
		logger.Info("Serving uploaded files", "url", opts.UploadsURL, "dir", opts.UploadsDir)
	}

	if opts.Swagger {
		ginRouter.GET("/api/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Публичное API
	public := ginRouter.Group("/api")
	public.Use(gzip.Gzip(gzip.DefaultCompression))

	// Админка: вход открыт, остальное за токеном
	adminOpen := ginRouter.Group("/api/admin")
	appHandlers.AuthHandler.RegisterRoutes(adminOpen)

	admin := ginRouter.Group("/api/admin")
	admin.Use(middleware.AdminMiddleware(authorizer))
	{
		appHandlers.ModelHandler.RegisterRoutes(public, admin)
		appHandlers.NewsHandler.RegisterRoutes(public, admin)
		appHandlers.RegulationHandler.RegisterRoutes(public, admin)
		appHandlers.EmployeeHandler.RegisterRoutes(public, admin)
		appHandlers.SectionHandler.RegisterRoutes(public, admin)

		appHandlers.PhotoHandler.RegisterRoutes(admin)
		appHandlers.SpecHandler.RegisterRoutes(admin)
		appHandlers.VideoHandler.RegisterRoutes(admin)
		appHandlers.UploadHandler.RegisterRoutes(admin)
	}
}
