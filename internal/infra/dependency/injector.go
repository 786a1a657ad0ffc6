// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/freight-ledger/backend/config"
	"github.com/freight-ledger/backend/internal/application/usecase/account"
	"github.com/freight-ledger/backend/internal/application/usecase/auth"
	"github.com/freight-ledger/backend/internal/application/usecase/car"
	"github.com/freight-ledger/backend/internal/application/usecase/carrier"
	"github.com/freight-ledger/backend/internal/application/usecase/company"
	"github.com/freight-ledger/backend/internal/application/usecase/expense"
	"github.com/freight-ledger/backend/internal/application/usecase/invoice"
	"github.com/freight-ledger/backend/internal/application/usecase/payment"
	"github.com/freight-ledger/backend/internal/application/usecase/statement"
	"github.com/freight-ledger/backend/internal/application/usecase/truck"
	"github.com/freight-ledger/backend/internal/infra/server/router"
	"github.com/freight-ledger/backend/internal/integration/adapters"
	"github.com/freight-ledger/backend/internal/integration/email"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/freight-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	carrierRepo := persistence.NewCarrierRepository(db)
	carRepo := persistence.NewCarRepository(db)
	truckRepo := persistence.NewTruckRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	companyRepo := persistence.NewCompanyRepository(db)
	invoiceRepo := persistence.NewInvoiceRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	suggestionService := adapters.NewGeminiService(cfg.Gemini.APIKey)
	rateLimiter := adapters.NewRedisRateLimiter(redisClient)
	emailService := email.NewService(emailQueueRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createEntryUseCase := account.NewCreateEntryUseCase(accountRepo)
	deleteEntryUseCase := account.NewDeleteEntryUseCase(accountRepo)
	statementUseCase := statement.NewComputeStatementUseCase(accountRepo)

	// Create carrier and car use cases
	listCarriersUseCase := carrier.NewListCarriersUseCase(carrierRepo, userRepo)
	createCarrierUseCase := carrier.NewCreateCarrierUseCase(carrierRepo, truckRepo)
	updateCarrierUseCase := carrier.NewUpdateCarrierUseCase(carrierRepo)
	toggleCarrierUseCase := carrier.NewToggleCarrierActiveUseCase(carrierRepo)
	deleteCarrierUseCase := carrier.NewDeleteCarrierUseCase(carrierRepo)
	createCarUseCase := car.NewCreateCarUseCase(carRepo, carrierRepo)
	bulkCreateCarsUseCase := car.NewBulkCreateCarsUseCase(carRepo, carrierRepo)
	deleteCarUseCase := car.NewDeleteCarUseCase(carRepo, carrierRepo)

	// Create truck use cases
	createTruckUseCase := truck.NewCreateTruckUseCase(truckRepo)
	listTrucksUseCase := truck.NewListTrucksUseCase(truckRepo)
	updateTruckUseCase := truck.NewUpdateTruckUseCase(truckRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, carrierRepo, truckRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, carrierRepo)
	suggestCategoryUseCase := expense.NewSuggestCategoryUseCase(suggestionService)

	// Create company use cases
	createCompanyUseCase := company.NewCreateCompanyUseCase(companyRepo)
	listCompaniesUseCase := company.NewListCompaniesUseCase(companyRepo)
	getCompanyCreditUseCase := company.NewGetCompanyCreditUseCase(companyRepo, invoiceRepo)
	setCompanyCreditUseCase := company.NewSetCompanyCreditUseCase(companyRepo)

	// Create invoice and payment use cases
	createInvoiceUseCase := invoice.NewCreateInvoiceUseCase(invoiceRepo, companyRepo)
	listInvoicesUseCase := invoice.NewListInvoicesUseCase(invoiceRepo)
	getInvoiceUseCase := invoice.NewGetInvoiceUseCase(invoiceRepo)
	applyPaymentUseCase := payment.NewApplyPaymentUseCase(invoiceRepo, companyRepo, emailService)
	deletePaymentUseCase := payment.NewDeletePaymentUseCase(invoiceRepo, companyRepo)

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
	)

	accountController := controller.NewAccountController(
		createAccountUseCase,
		listAccountsUseCase,
		createEntryUseCase,
		deleteEntryUseCase,
		statementUseCase,
	)

	carrierController := controller.NewCarrierController(
		listCarriersUseCase,
		createCarrierUseCase,
		updateCarrierUseCase,
		toggleCarrierUseCase,
		deleteCarrierUseCase,
		createCarUseCase,
		bulkCreateCarsUseCase,
		deleteCarUseCase,
	)

	truckController := controller.NewTruckController(
		createTruckUseCase,
		listTrucksUseCase,
		updateTruckUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		deleteExpenseUseCase,
		suggestCategoryUseCase,
	)

	companyController := controller.NewCompanyController(
		createCompanyUseCase,
		listCompaniesUseCase,
		getCompanyCreditUseCase,
		setCompanyCreditUseCase,
	)

	invoiceController := controller.NewInvoiceController(
		createInvoiceUseCase,
		listInvoicesUseCase,
		getInvoiceUseCase,
		applyPaymentUseCase,
		deletePaymentUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimitMiddleware
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimitMiddlewareWithConfig(rateLimiter, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimitMiddleware(rateLimiter)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		carrierController,
		truckController,
		expenseController,
		companyController,
		invoiceController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
