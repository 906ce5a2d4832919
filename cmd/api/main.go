package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/plazamap-backend/docs"
	"github.com/rafabene/plazamap-backend/internal/domain/entities"
	httphandlers "github.com/rafabene/plazamap-backend/internal/handlers/http"
	"github.com/rafabene/plazamap-backend/internal/handlers/middleware"
	"github.com/rafabene/plazamap-backend/internal/handlers/ws"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/auth"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/cache"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/config"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/i18n"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/logging"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/storage"
	"github.com/rafabene/plazamap-backend/internal/services"
)

// @title PlazaMap Backend API
// @version 1.0
// @description API do marketplace de pontos no mapa: clientes navegam, vendedores publicam.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting plazamap backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStartup()

	// Redis guarda a denylist de sessões encerradas
	redisClient, err := cache.NewRedisClient(startupCtx, cfg.Redis.URL)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		log.Fatal(err)
	}
	revoker := cache.NewSessionRevoker(redisClient)

	// Object storage para as imagens dos pontos
	objectStore, err := storage.NewMinioStore(startupCtx, &cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to connect to object storage", "error", err)
		log.Fatal(err)
	}

	// Tokens de acesso
	tokenMaker, err := auth.NewMaker(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	if err != nil {
		logger.Error("invalid jwt configuration", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	pointRepo := postgres.NewPointRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	authService := services.NewAuthService(userRepo, tokenMaker, revoker, logger)
	pointService := services.NewPointService(pointRepo, uow, objectStore, logger)
	imageService := services.NewImageService(pointRepo, objectStore, logger)

	// Hub de eventos em tempo real
	hub := ws.NewHub(logger)
	go hub.Run()

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	pointHandler := httphandlers.NewPointHandler(pointService, hub)
	imageHandler := httphandlers.NewImageHandler(imageService, hub)
	categoryHandler := httphandlers.NewCategoryHandler(cfg.Map)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	router.Use(middleware.RequestID())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authMiddleware := middleware.NewAuthMiddleware(tokenMaker, revoker, userRepo, logger)

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authMiddleware.Authenticate(), authHandler.Logout)
			authGroup.GET("/me", authMiddleware.Authenticate(), authHandler.Me)
		}

		// Catálogo e mapa (sem autenticação: dados estáticos)
		v1.GET("/categories", categoryHandler.ListCategories)
		v1.GET("/map/config", categoryHandler.GetMapConfig)

		// Pontos
		points := v1.Group("/points", authMiddleware.Authenticate())
		{
			// A vitrine completa é a tela do customer; o vendedor só
			// enxerga os próprios pontos em /mine
			points.GET("", authMiddleware.RequireRole(entities.RoleCustomer), pointHandler.ListPoints)
			points.GET("/stream", pointHandler.Stream)

			seller := points.Group("", authMiddleware.RequireRole(entities.RoleSeller))
			{
				seller.GET("/mine", pointHandler.ListMyPoints)
				seller.POST("", pointHandler.CreatePoint)
				seller.PUT("/:id", pointHandler.UpdatePoint)
				seller.DELETE("/:id", pointHandler.DeletePoint)
				seller.POST("/:id/image", imageHandler.UploadImage)
				seller.DELETE("/:id/image", imageHandler.DeleteImage)
			}
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
