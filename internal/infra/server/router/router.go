// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-app/backend/internal/domain/entity"
	"github.com/finance-app/backend/internal/integration/entrypoint/controller"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	userController         *controller.UserController
	categoryController     *controller.CategoryController
	entryController        *controller.EntryController
	walletController       *controller.WalletController
	creditCardController   *controller.CreditCardController
	budgetController       *controller.BudgetController
	recurringController    *controller.RecurringController
	invoiceController      *controller.InvoiceController
	goalController         *controller.GoalController
	notificationController *controller.NotificationController
	planController         *controller.PlanController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
	schedulerMiddleware    *middleware.SchedulerMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	entryController *controller.EntryController,
	walletController *controller.WalletController,
	creditCardController *controller.CreditCardController,
	budgetController *controller.BudgetController,
	recurringController *controller.RecurringController,
	invoiceController *controller.InvoiceController,
	goalController *controller.GoalController,
	notificationController *controller.NotificationController,
	planController *controller.PlanController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	schedulerMiddleware *middleware.SchedulerMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		userController:         userController,
		categoryController:     categoryController,
		entryController:        entryController,
		walletController:       walletController,
		creditCardController:   creditCardController,
		budgetController:       budgetController,
		recurringController:    recurringController,
		invoiceController:      invoiceController,
		goalController:         goalController,
		notificationController: notificationController,
		planController:         planController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
		schedulerMiddleware:    schedulerMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

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
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authController.Logout)
			auth.POST("/forgot-password", r.authController.ForgotPassword)
			auth.POST("/reset-password", r.authController.ResetPassword)
		}

		// Two-factor routes require a valid access token
		twoFactor := v1.Group("/auth/2fa")
		twoFactor.Use(r.authMiddleware.Authenticate())
		{
			twoFactor.POST("/enable", r.authController.EnableTwoFactor)
			twoFactor.POST("/confirm", r.authController.ConfirmTwoFactor)
		}

		// Account routes for the logged-in user
		users := v1.Group("/users")
		users.Use(r.authMiddleware.Authenticate())
		{
			users.GET("/me", r.userController.Me)
			users.PUT("/me/password", r.userController.ChangePassword)
			users.DELETE("/me", r.userController.DeleteAccount)
		}

		// Plans are public reference data
		v1.GET("/plans", r.planController.List)

		// Category routes
		categories := v1.Group("/categories")
		categories.Use(r.authMiddleware.Authenticate())
		{
			categories.GET("", r.categoryController.List)
			categories.POST("", r.categoryController.Create)
			categories.PATCH("/:id", r.categoryController.Update)
			categories.DELETE("/:id", r.categoryController.Delete)
		}

		// Entry routes
		entries := v1.Group("/entries")
		entries.Use(r.authMiddleware.Authenticate())
		{
			entries.GET("", r.entryController.List)
			entries.POST("", r.entryController.Create)
			entries.GET("/summary", r.entryController.Summary)
			entries.GET("/statement", r.entryController.Statement)
			entries.GET("/:id", r.entryController.Get)
			entries.PATCH("/:id", r.entryController.Update)
			entries.DELETE("/:id", r.entryController.Delete)
		}

		// Wallet routes
		wallets := v1.Group("/wallets")
		wallets.Use(r.authMiddleware.Authenticate())
		{
			wallets.GET("", r.walletController.List)
			wallets.POST("", r.walletController.Create)
			wallets.PATCH("/:id", r.walletController.Update)
			wallets.DELETE("/:id", r.walletController.Delete)
		}

		// Credit card routes
		creditCards := v1.Group("/credit-cards")
		creditCards.Use(r.authMiddleware.Authenticate())
		{
			creditCards.GET("", r.creditCardController.List)
			creditCards.POST("", r.creditCardController.Create)
			creditCards.PATCH("/:id", r.creditCardController.Update)
			creditCards.DELETE("/:id", r.creditCardController.Delete)
		}

		// Budget routes
		budgets := v1.Group("/budgets")
		budgets.Use(r.authMiddleware.Authenticate())
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Create)
			budgets.PATCH("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}

		// Recurring template routes
		recurring := v1.Group("/recurring")
		recurring.Use(r.authMiddleware.Authenticate())
		{
			recurring.GET("", r.recurringController.List)
			recurring.POST("", r.recurringController.Create)
			recurring.PATCH("/:id", r.recurringController.Update)
			recurring.DELETE("/:id", r.recurringController.Delete)
		}

		// Invoice routes
		invoices := v1.Group("/invoices")
		invoices.Use(r.authMiddleware.Authenticate())
		{
			invoices.GET("", r.invoiceController.List)
			invoices.POST("", r.invoiceController.Create)
			invoices.PATCH("/:id", r.invoiceController.Update)
			invoices.POST("/:id/pay", r.invoiceController.Pay)
			invoices.DELETE("/:id", r.invoiceController.Delete)
		}

		// Goal routes
		goals := v1.Group("/goals")
		goals.Use(r.authMiddleware.Authenticate())
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.GET("/:id", r.goalController.Get)
			goals.PATCH("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
			goals.POST("/:id/invite", r.goalController.Invite)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		notifications.Use(r.authMiddleware.Authenticate())
		{
			notifications.GET("", r.notificationController.List)
			notifications.PUT("/:id/read", r.notificationController.MarkRead)
			notifications.POST("/read-all", r.notificationController.MarkAllRead)
		}

		// Scheduler triggers guarded by the shared secret, not by user auth
		v1.POST("/recurring/process",
			r.schedulerMiddleware.Authenticate(entity.IntegrationRecurringScheduler),
			r.recurringController.Process)
		v1.POST("/invoices/process",
			r.schedulerMiddleware.Authenticate(entity.IntegrationInvoiceScheduler),
			r.invoiceController.Process)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
