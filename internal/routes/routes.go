package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/finwell/team-finance-app/internal/goalsync"
	"github.com/finwell/team-finance-app/internal/handlers"
	"github.com/finwell/team-finance-app/internal/middleware"
)

// Register wires the full route table: the page-style paths behind the
// redirecting session middleware and the JSON API behind its 401 variant.
func Register(r *gin.Engine, pool *pgxpool.Pool, sync *goalsync.Manager, secret []byte, log zerolog.Logger) {
	pages := r.Group("/", middleware.Session(secret, log))
	{
		// The UI itself is served elsewhere; these exist so the redirect
		// rules have endpoints to land on.
		pages.GET("/", placeholder)
		pages.GET("/dashboard", placeholder)
		pages.GET("/login", placeholder)
		pages.GET("/signup", placeholder)
		pages.GET("/organizations", placeholder)
	}

	api := r.Group("/api", middleware.RequireSession(secret))
	{
		api.GET("/assets", handlers.ListAssetsHandler(pool, log))
		api.POST("/assets", handlers.CreateAssetHandler(pool, sync, log))
		api.PUT("/assets/:id", handlers.UpdateAssetHandler(pool, sync, log))
		api.DELETE("/assets/:id", handlers.DeleteAssetHandler(pool, sync, log))

		api.GET("/transactions", handlers.ListTransactionsHandler(pool, log))
		api.POST("/transactions", handlers.CreateTransactionHandler(pool, log))
		api.PUT("/transactions/:id", handlers.UpdateTransactionHandler(pool, log))
		api.DELETE("/transactions/:id", handlers.DeleteTransactionHandler(pool, log))

		api.GET("/categories", handlers.ListCategoriesHandler(pool, log))
		api.POST("/categories", handlers.CreateCategoryHandler(pool, log))
		api.PUT("/categories/:id", handlers.UpdateCategoryHandler(pool, log))
		api.DELETE("/categories/:id", handlers.DeleteCategoryHandler(pool, log))

		api.GET("/payment-methods", handlers.ListPaymentMethodsHandler(pool, log))
		api.POST("/payment-methods", handlers.CreatePaymentMethodHandler(pool, log))
		api.PUT("/payment-methods/:id", handlers.UpdatePaymentMethodHandler(pool, log))
		api.DELETE("/payment-methods/:id", handlers.DeletePaymentMethodHandler(pool, log))

		api.GET("/goals", handlers.ListGoalsHandler(pool, log))
		api.POST("/goals", handlers.CreateGoalHandler(pool, log))
		api.POST("/goals/sync", handlers.SyncGoalsHandler(sync, log))
		api.GET("/goals/stats", handlers.GoalStatsHandler(sync, log))
		api.GET("/goals/:id/current-amount", handlers.GoalCurrentAmountHandler(sync, log))
		api.PUT("/goals/:id", handlers.UpdateGoalHandler(pool, log))
		api.DELETE("/goals/:id", handlers.DeleteGoalHandler(pool, log))

		api.GET("/organizations", handlers.ListOrganizationsHandler(pool, log))
		api.POST("/organizations", handlers.CreateOrganizationHandler(pool, log))
		api.GET("/organizations/:id/check-membership", handlers.CheckMembershipHandler(pool, log))
		api.GET("/organizations/:id/members", handlers.ListMembersHandler(pool, log))
		api.POST("/organizations/:id/members", handlers.AddMemberHandler(pool, log))

		api.GET("/dashboard", handlers.DashboardHandler(pool, log))
	}
}

func placeholder(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"path": c.Request.URL.Path})
}
