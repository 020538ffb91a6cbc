// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/finance-app/backend/config"
	"github.com/finance-app/backend/internal/application/usecase/auth"
	"github.com/finance-app/backend/internal/application/usecase/budget"
	"github.com/finance-app/backend/internal/application/usecase/category"
	"github.com/finance-app/backend/internal/application/usecase/creditcard"
	"github.com/finance-app/backend/internal/application/usecase/entry"
	"github.com/finance-app/backend/internal/application/usecase/goal"
	"github.com/finance-app/backend/internal/application/usecase/invoice"
	"github.com/finance-app/backend/internal/application/usecase/notification"
	"github.com/finance-app/backend/internal/application/usecase/plan"
	"github.com/finance-app/backend/internal/application/usecase/recurring"
	"github.com/finance-app/backend/internal/application/usecase/wallet"
	"github.com/finance-app/backend/internal/infra/server/router"
	"github.com/finance-app/backend/internal/integration/adapters"
	"github.com/finance-app/backend/internal/integration/email"
	"github.com/finance-app/backend/internal/integration/email/templates"
	"github.com/finance-app/backend/internal/integration/entrypoint/controller"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-app/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	entryRepo := persistence.NewEntryRepository(db)
	walletRepo := persistence.NewWalletRepository(db)
	cardRepo := persistence.NewCreditCardRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	recurringRepo := persistence.NewRecurringRepository(db)
	invoiceRepo := persistence.NewInvoiceRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)
	logRepo := persistence.NewIntegrationLogRepository(db)
	planRepo := persistence.NewPlanRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	totpService := adapters.NewTOTPService()
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	emailRenderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService, totpService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	enableTwoFactorUseCase := auth.NewEnableTwoFactorUseCase(userRepo, totpService)
	confirmTwoFactorUseCase := auth.NewConfirmTwoFactorUseCase(userRepo, totpService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, emailSender, emailRenderer, cfg.Server.FrontendURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService)

	// Create account use cases
	getProfileUseCase := auth.NewGetProfileUseCase(userRepo)
	changePasswordUseCase := auth.NewChangePasswordUseCase(userRepo, passwordService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, entryRepo)

	// Create entry use cases
	createEntryUseCase := entry.NewCreateEntryUseCase(entryRepo, categoryRepo, walletRepo, cardRepo, goalRepo)
	listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo)
	getEntryUseCase := entry.NewGetEntryUseCase(entryRepo)
	updateEntryUseCase := entry.NewUpdateEntryUseCase(entryRepo, goalRepo)
	deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo, goalRepo)
	getSummaryUseCase := entry.NewGetSummaryUseCase(entryRepo)
	getStatementUseCase := entry.NewGetStatementUseCase(entryRepo)

	// Create wallet use cases
	createWalletUseCase := wallet.NewCreateWalletUseCase(walletRepo)
	listWalletsUseCase := wallet.NewListWalletsUseCase(walletRepo, entryRepo)
	updateWalletUseCase := wallet.NewUpdateWalletUseCase(walletRepo)
	deleteWalletUseCase := wallet.NewDeleteWalletUseCase(walletRepo)

	// Create credit card use cases
	createCardUseCase := creditcard.NewCreateCardUseCase(cardRepo, walletRepo)
	listCardsUseCase := creditcard.NewListCardsUseCase(cardRepo, entryRepo)
	updateCardUseCase := creditcard.NewUpdateCardUseCase(cardRepo, walletRepo)
	deleteCardUseCase := creditcard.NewDeleteCardUseCase(cardRepo)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, entryRepo, categoryRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create recurring template use cases
	createTemplateUseCase := recurring.NewCreateTemplateUseCase(recurringRepo)
	listTemplatesUseCase := recurring.NewListTemplatesUseCase(recurringRepo)
	updateTemplateUseCase := recurring.NewUpdateTemplateUseCase(recurringRepo)
	deleteTemplateUseCase := recurring.NewDeleteTemplateUseCase(recurringRepo)
	processTemplatesUseCase := recurring.NewProcessTemplatesUseCase(recurringRepo, entryRepo, logRepo, slog.Default())

	// Create invoice use cases
	createInvoiceUseCase := invoice.NewCreateInvoiceUseCase(invoiceRepo)
	listInvoicesUseCase := invoice.NewListInvoicesUseCase(invoiceRepo)
	updateInvoiceUseCase := invoice.NewUpdateInvoiceUseCase(invoiceRepo)
	payInvoiceUseCase := invoice.NewPayInvoiceUseCase(invoiceRepo)
	deleteInvoiceUseCase := invoice.NewDeleteInvoiceUseCase(invoiceRepo)
	processRemindersUseCase := invoice.NewProcessRemindersUseCase(
		invoiceRepo,
		userRepo,
		notificationRepo,
		logRepo,
		emailSender,
		emailRenderer,
		slog.Default(),
	)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, userRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	inviteMemberUseCase := goal.NewInviteMemberUseCase(goalRepo, userRepo, notificationRepo)

	// Create notification use cases
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	markReadUseCase := notification.NewMarkReadUseCase(notificationRepo)
	markAllReadUseCase := notification.NewMarkAllReadUseCase(notificationRepo)

	// Create plan use case
	listPlansUseCase := plan.NewListPlansUseCase(planRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		enableTwoFactorUseCase,
		confirmTwoFactorUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		changePasswordUseCase,
		deleteAccountUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	entryController := controller.NewEntryController(
		createEntryUseCase,
		listEntriesUseCase,
		getEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
		getSummaryUseCase,
		getStatementUseCase,
	)

	walletController := controller.NewWalletController(
		createWalletUseCase,
		listWalletsUseCase,
		updateWalletUseCase,
		deleteWalletUseCase,
	)

	creditCardController := controller.NewCreditCardController(
		createCardUseCase,
		listCardsUseCase,
		updateCardUseCase,
		deleteCardUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	recurringController := controller.NewRecurringController(
		createTemplateUseCase,
		listTemplatesUseCase,
		updateTemplateUseCase,
		deleteTemplateUseCase,
		processTemplatesUseCase,
	)

	invoiceController := controller.NewInvoiceController(
		createInvoiceUseCase,
		listInvoicesUseCase,
		updateInvoiceUseCase,
		payInvoiceUseCase,
		deleteInvoiceUseCase,
		processRemindersUseCase,
	)

	goalController := controller.NewGoalController(
		createGoalUseCase,
		listGoalsUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		inviteMemberUseCase,
	)

	notificationController := controller.NewNotificationController(
		listNotificationsUseCase,
		markReadUseCase,
		markAllReadUseCase,
	)

	planController := controller.NewPlanController(listPlansUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	schedulerMiddleware := middleware.NewSchedulerMiddleware(cfg.Scheduler.Secret, logRepo)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		entryController,
		walletController,
		creditCardController,
		budgetController,
		recurringController,
		invoiceController,
		goalController,
		notificationController,
		planController,
		loginRateLimiter,
		authMiddleware,
		schedulerMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}, nil
}
