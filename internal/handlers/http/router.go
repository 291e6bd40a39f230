package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafabene/usermanager-backend/internal/domain/ports"
	"github.com/rafabene/usermanager-backend/internal/handlers/dto"
	"github.com/rafabene/usermanager-backend/internal/handlers/middleware"
	"github.com/rafabene/usermanager-backend/internal/infrastructure/i18n"
	"github.com/rafabene/usermanager-backend/internal/infrastructure/metrics"
)

// Handlers agrupa os handlers registrados no router
type Handlers struct {
	User   *UserHandler
	Auth   *AuthHandler
	Health *HealthHandler
}

// RouterOptions configura os middlewares globais
type RouterOptions struct {
	Logger         ports.Logger
	I18n           *i18n.Service
	Metrics        *metrics.HTTPMetrics
	AllowedOrigins []string
	EnableSwagger  bool
}

// NewRouter monta o engine do Gin com middlewares e rotas
func NewRouter(h Handlers, opts RouterOptions) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.CustomRecovery(recoverPanic),
		middleware.RequestID(),
		middleware.RequestLogger(opts.Logger),
		opts.Metrics.Middleware(),
		middleware.CORS(opts.AllowedOrigins),
		middleware.NewI18nMiddleware(opts.I18n).DetectLanguage(),
	)

	if h.Health != nil {
		router.GET("/health", h.Health.Health)
	}
	router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	if opts.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group("/api")
	{
		if h.Auth != nil {
			api.POST("/auth/login", h.Auth.Login)
		}

		users := api.Group("/users")
		{
			users.POST("", h.User.CreateUser)
			users.GET("", h.User.ListUsers)
			users.GET("/username-exists", h.User.UsernameExists)
			users.GET("/email-exists", h.User.EmailExists)
			users.GET("/:userId", h.User.GetUser)
			users.PUT("/:userId", h.User.UpdateUser)
			users.DELETE("/:userId/soft", h.User.SoftDeleteUser)
			users.DELETE("/:userId/force", h.User.ForceDeleteUser)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Status:     "error",
			StatusCode: http.StatusNotFound,
			Message:    "route not found",
		})
	})

	return router
}

// recoverPanic responde panics com o mesmo corpo de erro das demais falhas
func recoverPanic(c *gin.Context, recovered any) {
	dto.RespondError(c, fmt.Errorf("panic: %v", recovered))
}
