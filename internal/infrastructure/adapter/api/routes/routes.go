package routes

import (
	coreport "github.com/amirhossein-jamali/bank-account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-account-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bank-account-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Account *handler.AccountHandler
	Admin   *handler.AdminHandler
	Health  *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers, authenticator usecase.AdminAuthenticator) {
	router.GET("/health", handlers.Health.Health)

	// Account numbers may contain URL-reserved characters, so every account
	// route takes the number in the JSON body rather than in the path
	accountRoutes := router.Group("/accounts")
	{
		accountRoutes.POST("", handlers.Account.CreateAccount)
		accountRoutes.POST("/deposit", handlers.Account.Deposit)
		accountRoutes.POST("/withdraw", handlers.Account.Withdraw)
		accountRoutes.POST("/details", handlers.Account.GetDetails)
		accountRoutes.PATCH("", handlers.Account.UpdateDetails)
		accountRoutes.DELETE("", handlers.Account.DeleteAccount)
	}

	adminRoutes := router.Group("/admin")
	{
		adminRoutes.POST("/login", handlers.Admin.Login)

		protected := adminRoutes.Group("", middleware.AdminAuth(authenticator))
		protected.GET("/accounts", handlers.Admin.ListAccounts)
		protected.GET("/accounts/export", handlers.Admin.ExportAccounts)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.RequestID())
}
