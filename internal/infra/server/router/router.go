// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                  *gin.Engine
	healthController        *controller.HealthController
	authController          *controller.AuthController
	familyController        *controller.FamilyController
	categoryController      *controller.CategoryController
	tagController           *controller.TagController
	transactionController   *controller.TransactionController
	budgetController        *controller.BudgetController
	summaryController       *controller.SummaryController
	loginRateLimiter        *middleware.RateLimiter
	authMiddleware          *middleware.AuthMiddleware
	familyContextMiddleware *middleware.FamilyContextMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	familyController *controller.FamilyController,
	categoryController *controller.CategoryController,
	tagController *controller.TagController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	summaryController *controller.SummaryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	familyContextMiddleware *middleware.FamilyContextMiddleware,
) *Router {
	return &Router{
		healthController:        healthController,
		authController:          authController,
		familyController:        familyController,
		categoryController:      categoryController,
		tagController:           tagController,
		transactionController:   transactionController,
		budgetController:        budgetController,
		summaryController:       summaryController,
		loginRateLimiter:        loginRateLimiter,
		authMiddleware:          authMiddleware,
		familyContextMiddleware: familyContextMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}

			if r.authMiddleware != nil {
				authed := v1.Group("/auth")
				authed.Use(r.authMiddleware.Authenticate())
				{
					authed.GET("/me", r.authController.Me)
					authed.DELETE("/account", r.authController.DeleteAccount)
				}
			}
		}

		// Family routes (require authentication but not a resolved family)
		if r.familyController != nil && r.authMiddleware != nil {
			families := v1.Group("/families")
			families.Use(r.authMiddleware.Authenticate())
			{
				families.POST("", r.familyController.Create)
				families.GET("", r.familyController.List)
				families.GET("/context", r.familyController.Context)
				families.PUT("/select", r.familyController.Select)
				families.GET("/:id", r.familyController.Get)
				families.PATCH("/:id", r.familyController.Update)
				families.DELETE("/:id", r.familyController.Delete)
				families.POST("/:id/invite", r.familyController.Invite)
				families.DELETE("/:id/members/me", r.familyController.Leave)
				families.DELETE("/:id/members/:member_id", r.familyController.RemoveMember)
			}

			// Invite acceptance route (separate path)
			invites := v1.Group("/invites")
			invites.Use(r.authMiddleware.Authenticate())
			{
				invites.POST("/:token/accept", r.familyController.AcceptInvite)
			}
		}

		// Family-scoped ledger routes
		if r.authMiddleware != nil && r.familyContextMiddleware != nil {
			scoped := v1.Group("")
			scoped.Use(r.authMiddleware.Authenticate(), r.familyContextMiddleware.Resolve())
			{
				if r.categoryController != nil {
					categories := scoped.Group("/categories")
					{
						categories.GET("", r.categoryController.List)
						categories.POST("", r.categoryController.Create)
						categories.PATCH("/:id", r.categoryController.Update)
						categories.DELETE("/:id", r.categoryController.Delete)
					}
				}

				if r.tagController != nil {
					tags := scoped.Group("/tags")
					{
						tags.GET("", r.tagController.List)
						tags.POST("", r.tagController.Create)
						tags.PATCH("/:id", r.tagController.Update)
						tags.DELETE("/:id", r.tagController.Delete)
					}
				}

				if r.transactionController != nil {
					transactions := scoped.Group("/transactions")
					{
						transactions.GET("", r.transactionController.List)
						transactions.POST("", r.transactionController.Create)
						transactions.PATCH("/:id", r.transactionController.Update)
						transactions.DELETE("/:id", r.transactionController.Delete)
					}
				}

				if r.budgetController != nil {
					budgets := scoped.Group("/budgets")
					{
						budgets.GET("", r.budgetController.List)
						budgets.POST("", r.budgetController.Create)
						budgets.GET("/progress", r.budgetController.Progress)
						budgets.PATCH("/:id", r.budgetController.Update)
						budgets.DELETE("/:id", r.budgetController.Delete)
					}
				}

				if r.summaryController != nil {
					scoped.GET("/summary", r.summaryController.Monthly)
				}
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
