package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	_ "github.com/rafabene/usermanager-backend/docs"
	httphandlers "github.com/rafabene/usermanager-backend/internal/handlers/http"
	"github.com/rafabene/usermanager-backend/internal/infrastructure/config"
	"github.com/rafabene/usermanager-backend/internal/infrastructure/i18n"
	"github.com/rafabene/usermanager-backend/internal/infrastructure/logging"
	"github.com/rafabene/usermanager-backend/internal/infrastructure/metrics"
	"github.com/rafabene/usermanager-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/usermanager-backend/internal/infrastructure/security"
	"github.com/rafabene/usermanager-backend/internal/infrastructure/validation"
	"github.com/rafabene/usermanager-backend/internal/services"
)

// @title        User Manager API
// @version      1.0
// @description  Gerenciamento de usuários e perfis.
// @BasePath     /
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewZerologLogger(logging.Options{
		ServiceName: "usermanager-backend",
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Output:      os.Stdout,
	})
	logger.Info("starting usermanager backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger, cfg.Logging.Level == "debug")
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", "error", err)
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := postgres.Migrate(migrateCtx, db, cfg.Database.Driver, logger)
		cancel()
		if err != nil {
			logger.Error("failed to migrate database", "error", err)
			log.Fatal(err)
		}
	}

	// Inicializar i18n
	var i18nService *i18n.Service
	if cfg.I18n.LocalesDir != "" {
		i18nService, err = i18n.NewServiceFromDir(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	} else {
		i18nService, err = i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	}
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		// fora de produção um segredo efêmero basta; tokens expiram no restart
		jwtSecret = uuid.NewString()
		logger.Warn("JWT_SECRET not set, using ephemeral secret")
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Infraestrutura de segurança e validação
	hasher := security.NewBcryptHasher(cfg.Password.BcryptCost)
	tokens := security.NewJWTIssuer(jwtSecret, cfg.JWT.Issuer, cfg.JWT.AccessExpiry)
	validator := validation.New()

	// Inicializar services
	userService := services.NewUserService(userRepo, profileRepo, uow, hasher, validator, logger)
	authService := services.NewAuthService(userRepo, hasher, tokens, validator, logger)

	// Métricas
	httpMetrics := metrics.NewHTTPMetrics(metrics.NewRegistry())

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(
		httphandlers.Handlers{
			User:   httphandlers.NewUserHandler(userService, httpMetrics),
			Auth:   httphandlers.NewAuthHandler(authService),
			Health: httphandlers.NewHealthHandler(sqlDB, cfg.Env),
		},
		httphandlers.RouterOptions{
			Logger:         logger,
			I18n:           i18nService,
			Metrics:        httpMetrics,
			AllowedOrigins: cfg.CORS.AllowedOriginList(),
			EnableSwagger:  !cfg.IsProduction(),
		},
	)

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
			"base_url", cfg.Server.BaseURL,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
