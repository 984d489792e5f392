package router

import (
	"budget-tracker/internal/config"
	"budget-tracker/internal/handlers"
	"budget-tracker/internal/middleware"
	"budget-tracker/internal/repositories"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies holds everything the HTTP layer needs. SampleData is optional
// and only mounted outside production.
type Dependencies struct {
	Config               *config.Config
	DB                   handlers.HealthChecker
	Registerer           prometheus.Registerer
	Gatherer             prometheus.Gatherer
	Auth                 services.AuthServiceInterface
	Token                services.TokenServiceInterface
	BlacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	Categories           services.CategoryServiceInterface
	Transactions         services.TransactionServiceInterface
	Budgets              services.BudgetServiceInterface
	Reports              services.ReportServiceInterface
	Profile              services.ProfileServiceInterface
	Audit                services.AuditServiceInterface
	SampleData           services.SampleDataServiceInterface
	RateLimiter          *middleware.IPRateLimiter
}

// SetupRouter builds the echo instance with every route registered.
func SetupRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  deps.Config.Server.CORSAllowOrigins,
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(middleware.RequestMetrics(deps.Registerer))

	health := handlers.NewHealthCheckHandler(deps.DB)
	e.GET("/", health.HealthCheck)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(deps.Token, deps.BlacklistedTokenRepo)

	auth := handlers.NewAuthHandler(deps.Auth)
	limited := api.Group("", deps.RateLimiter.Middleware())
	limited.POST("/signup", auth.Signup)
	limited.POST("/login", auth.Login)
	limited.POST("/token/refresh", auth.RefreshToken)

	protected := api.Group("", requireAuth)
	protected.POST("/logout", auth.Logout)

	categories := handlers.NewCategoryHandler(deps.Categories)
	protected.GET("/categories", categories.ListCategories)
	protected.POST("/categories", categories.CreateCategory)
	protected.GET("/categories/:id", categories.GetCategory)
	protected.PUT("/categories/:id", categories.UpdateCategory)
	protected.PATCH("/categories/:id", categories.PatchCategory)
	protected.DELETE("/categories/:id", categories.DeleteCategory)

	transactions := handlers.NewTransactionHandler(deps.Transactions)
	protected.GET("/transactions", transactions.ListTransactions)
	protected.POST("/transactions", transactions.CreateTransaction)
	protected.GET("/transactions/:id", transactions.GetTransaction)
	protected.PUT("/transactions/:id", transactions.UpdateTransaction)
	protected.PATCH("/transactions/:id", transactions.PatchTransaction)
	protected.DELETE("/transactions/:id", transactions.DeleteTransaction)

	budgets := handlers.NewBudgetHandler(deps.Budgets)
	protected.GET("/budgets", budgets.ListBudgets)
	protected.POST("/budgets", budgets.CreateBudget)
	protected.GET("/budgets/:id", budgets.GetBudget)
	protected.PUT("/budgets/:id", budgets.UpdateBudget)
	protected.PATCH("/budgets/:id", budgets.PatchBudget)
	protected.DELETE("/budgets/:id", budgets.DeleteBudget)

	reports := handlers.NewReportHandler(deps.Reports)
	protected.GET("/summary", reports.Summary)
	protected.GET("/budget-comparison", reports.BudgetComparison)
	protected.GET("/predict-expenses", reports.PredictExpenses)
	protected.GET("/get-records", reports.GetRecords)

	profile := handlers.NewProfileHandler(deps.Profile, deps.Audit)
	protected.GET("/profile", profile.GetProfile)
	protected.PUT("/profile", profile.UpdateProfile)
	protected.GET("/profile/activity", profile.GetActivity)

	if deps.SampleData != nil && !deps.Config.IsProduction() {
		dev := handlers.NewDevHandler(deps.SampleData)
		protected.POST("/dev/sample-data", dev.GenerateSampleData)
	}

	return e
}
