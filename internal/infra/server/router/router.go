// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/freight-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/freight-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	authController    *controller.AuthController
	accountController *controller.AccountController
	carrierController *controller.CarrierController
	truckController   *controller.TruckController
	expenseController *controller.ExpenseController
	companyController *controller.CompanyController
	invoiceController *controller.InvoiceController
	loginRateLimiter  *middleware.RateLimitMiddleware
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	accountController *controller.AccountController,
	carrierController *controller.CarrierController,
	truckController *controller.TruckController,
	expenseController *controller.ExpenseController,
	companyController *controller.CompanyController,
	invoiceController *controller.InvoiceController,
	loginRateLimiter *middleware.RateLimitMiddleware,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:  healthController,
		authController:    authController,
		accountController: accountController,
		carrierController: carrierController,
		truckController:   truckController,
		expenseController: expenseController,
		companyController: companyController,
		invoiceController: invoiceController,
		loginRateLimiter:  loginRateLimiter,
		authMiddleware:    authMiddleware,
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
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.loginRateLimiter.Limit("register"), r.authController.Register)
			auth.POST("/login", r.loginRateLimiter.Limit("login"), r.authController.Login)
			auth.POST("/refresh", r.authController.RefreshToken)
			auth.POST("/logout", r.authController.Logout)
		}

		accounts := v1.Group("/accounts")
		accounts.Use(r.authMiddleware.Authenticate())
		{
			accounts.GET("", r.accountController.List)
			accounts.POST("", r.accountController.Create)
			accounts.POST("/:id/entries", r.accountController.CreateEntry)
			accounts.DELETE("/entries/:entryId", r.accountController.DeleteEntry)
			accounts.GET("/:id/statement", r.accountController.Statement)
		}

		carriers := v1.Group("/carriers")
		carriers.Use(r.authMiddleware.Authenticate())
		{
			carriers.GET("", r.carrierController.List)
			carriers.POST("", r.carrierController.Create)
			carriers.PATCH("/:id", r.carrierController.Update)
			carriers.PATCH("/:id/active", r.carrierController.ToggleActive)
			carriers.DELETE("/:id", r.carrierController.Delete)
			carriers.POST("/:id/cars", r.carrierController.CreateCar)
			carriers.POST("/:id/cars/bulk", r.carrierController.BulkCreateCars)
		}

		cars := v1.Group("/cars")
		cars.Use(r.authMiddleware.Authenticate())
		{
			cars.DELETE("/:carId", r.carrierController.DeleteCar)
		}

		trucks := v1.Group("/trucks")
		trucks.Use(r.authMiddleware.Authenticate())
		{
			trucks.GET("", r.truckController.List)
			trucks.POST("", r.truckController.Create)
			trucks.PATCH("/:id", r.truckController.Update)
		}

		expenses := v1.Group("/expenses")
		expenses.Use(r.authMiddleware.Authenticate())
		{
			expenses.GET("", r.expenseController.List)
			expenses.POST("", r.expenseController.Create)
			expenses.DELETE("/:id", r.expenseController.Delete)
			expenses.POST("/suggest-category", r.expenseController.SuggestCategory)
		}

		companies := v1.Group("/companies")
		companies.Use(r.authMiddleware.Authenticate())
		{
			companies.GET("", r.companyController.List)
			companies.POST("", r.companyController.Create)
			companies.GET("/:id/credit", r.companyController.GetCredit)
			companies.PATCH("/:id/credit", r.authMiddleware.RequireSuperAdmin(), r.companyController.SetCredit)
		}

		invoices := v1.Group("/invoices")
		invoices.Use(r.authMiddleware.Authenticate())
		{
			invoices.GET("", r.invoiceController.List)
			invoices.POST("", r.invoiceController.Create)
			invoices.GET("/:id", r.invoiceController.Get)
			invoices.POST("/:id/payments", r.invoiceController.ApplyPayment)
			invoices.DELETE("/:id/payments/:index", r.invoiceController.DeletePayment)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
