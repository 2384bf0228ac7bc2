package routes

import (
	"github.com/gin-gonic/gin"
	coreport "github.com/timelocked/vault-service/internal/domain/port/core"
	"github.com/timelocked/vault-service/internal/infrastructure/adapter/api/handler"
	"github.com/timelocked/vault-service/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	vaultHandler *handler.VaultHandler,
	withdrawHandler *handler.WithdrawHandler,
	healthHandler *handler.HealthHandler,
) {
	// Vault routes
	vaultRoutes := router.Group("/vault")
	{
		// POST /vault
		vaultRoutes.POST("", vaultHandler.DeployVault)

		// GET /vault/:vaultId
		vaultRoutes.GET("/:vaultId", vaultHandler.GetVaultStatus)

		// POST /vault/:vaultId/withdraw
		vaultRoutes.POST("/:vaultId/withdraw", withdrawHandler.ProcessWithdraw)

		// GET /vault/:vaultId/withdrawals
		vaultRoutes.GET("/:vaultId/withdrawals", withdrawHandler.ListWithdrawals)
	}

	// GET /health
	router.GET("/health", healthHandler.Check)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
