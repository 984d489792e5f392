package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"budget-tracker/internal/database"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"
	"budget-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	db        *database.DB
	metrics   *PrometheusMetrics
	service   *ReportService
	owner     *models.User
	other     *models.User
	salary    *models.Category
	groceries *models.Category
	rent      *models.Category
	utilities *models.Category
}

func TestReportServiceSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.metrics = NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)

	s.service = NewReportService(
		repositories.NewCategoryRepository(s.db.DB),
		repositories.NewTransactionRepository(s.db.DB),
		repositories.NewBudgetRepository(s.db.DB),
		NewActivityLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		s.metrics,
	).(*ReportService)
	s.service.now = func() time.Time { return time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC) }

	s.owner = database.CreateTestUser(s.T(), s.db, "owner")
	s.other = database.CreateTestUser(s.T(), s.db, "other")
	s.salary = database.CreateTestCategory(s.T(), s.db, s.owner.ID, "Salary", models.CategoryTypeIncome)
	s.groceries = database.CreateTestCategory(s.T(), s.db, s.owner.ID, "Groceries", models.CategoryTypeExpense)
	s.rent = database.CreateTestCategory(s.T(), s.db, s.owner.ID, "Rent", models.CategoryTypeExpense)
	s.utilities = database.CreateTestCategory(s.T(), s.db, s.owner.ID, "Utilities", models.CategoryTypeExpense)
}

func (s *ReportServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ReportServiceTestSuite) addTransaction(owner uuid.UUID, category *models.Category, amount string, date models.Date) {
	s.Require().NoError(s.db.Create(&models.Transaction{
		UserID:     owner,
		CategoryID: category.ID,
		Amount:     decimal.RequireFromString(amount),
		Date:       date,
	}).Error)
}

func (s *ReportServiceTestSuite) addBudget(category *models.Category, amount, month string, year int) {
	s.Require().NoError(s.db.Create(&models.Budget{
		UserID:     s.owner.ID,
		CategoryID: category.ID,
		Amount:     decimal.RequireFromString(amount),
		Month:      month,
		Year:       year,
	}).Error)
}

func (s *ReportServiceTestSuite) equalAmount(expected string, actual decimal.Decimal) {
	s.T().Helper()
	s.True(decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func (s *ReportServiceTestSuite) januaryRange() models.DateRange {
	return models.DateRange{
		Start: models.NewDate(2024, time.January, 1),
		End:   models.NewDate(2024, time.January, 31),
	}
}

func (s *ReportServiceTestSuite) TestComputeSummary_JanuaryExample() {
	s.addTransaction(s.owner.ID, s.salary, "1000", models.NewDate(2024, time.January, 5))
	s.addTransaction(s.owner.ID, s.groceries, "200", models.NewDate(2024, time.January, 10))
	s.addTransaction(s.owner.ID, s.groceries, "50", models.NewDate(2024, time.January, 20))

	summary, err := s.service.ComputeSummary(s.ctx, s.owner.ID, s.januaryRange())
	s.Require().NoError(err)

	s.equalAmount("1000.00", summary.TotalIncome)
	s.equalAmount("250.00", summary.TotalExpenses)
	s.equalAmount("750.00", summary.NetBalance)
	s.Require().Len(summary.ExpensesByCategory, 1)
	s.Equal("Groceries", summary.ExpensesByCategory[0].CategoryName)
	s.equalAmount("250.00", summary.ExpensesByCategory[0].Amount)
	s.Equal(s.januaryRange(), summary.Range)
}

func (s *ReportServiceTestSuite) TestComputeSummary_RangeBoundsAreInclusive() {
	s.addTransaction(s.owner.ID, s.groceries, "10", models.NewDate(2023, time.December, 31))
	s.addTransaction(s.owner.ID, s.groceries, "20", models.NewDate(2024, time.January, 1))
	s.addTransaction(s.owner.ID, s.groceries, "30", models.NewDate(2024, time.January, 31))
	s.addTransaction(s.owner.ID, s.groceries, "40", models.NewDate(2024, time.February, 1))

	summary, err := s.service.ComputeSummary(s.ctx, s.owner.ID, s.januaryRange())
	s.Require().NoError(err)

	s.equalAmount("50", summary.TotalExpenses)
}

func (s *ReportServiceTestSuite) TestComputeSummary_IgnoresOtherOwners() {
	otherGroceries := database.CreateTestCategory(s.T(), s.db, s.other.ID, "Groceries", models.CategoryTypeExpense)
	s.addTransaction(s.other.ID, otherGroceries, "999", models.NewDate(2024, time.January, 10))
	s.addTransaction(s.owner.ID, s.rent, "800", models.NewDate(2024, time.January, 2))

	summary, err := s.service.ComputeSummary(s.ctx, s.owner.ID, s.januaryRange())
	s.Require().NoError(err)

	s.equalAmount("0", summary.TotalIncome)
	s.equalAmount("800", summary.TotalExpenses)
	s.equalAmount("-800", summary.NetBalance)
	s.Require().Len(summary.ExpensesByCategory, 1)
	s.Equal(s.rent.ID, summary.ExpensesByCategory[0].CategoryID)
}

func (s *ReportServiceTestSuite) TestComputeSummary_EmptyIsZeroed() {
	summary, err := s.service.ComputeSummary(s.ctx, s.owner.ID, s.januaryRange())
	s.Require().NoError(err)

	s.equalAmount("0", summary.TotalIncome)
	s.equalAmount("0", summary.TotalExpenses)
	s.equalAmount("0", summary.NetBalance)
	s.NotNil(summary.ExpensesByCategory)
	s.Empty(summary.ExpensesByCategory)
}

func (s *ReportServiceTestSuite) TestComputeSummary_MonthlyTrend() {
	s.addTransaction(s.owner.ID, s.salary, "1000", models.NewDate(2024, time.January, 5))
	s.addTransaction(s.owner.ID, s.groceries, "250", models.NewDate(2024, time.January, 10))
	s.addTransaction(s.owner.ID, s.rent, "700", models.NewDate(2024, time.March, 1))
	s.addTransaction(s.owner.ID, s.salary, "5000", models.NewDate(2023, time.September, 30))

	summary, err := s.service.ComputeSummary(s.ctx, s.owner.ID, s.januaryRange())
	s.Require().NoError(err)

	trend := summary.MonthlyTrend
	s.Require().Len(trend, models.TrendMonths)
	s.Equal(models.YearMonth{Year: 2023, Month: time.October}, trend[0].Month)
	s.Equal(models.YearMonth{Year: 2024, Month: time.March}, trend[5].Month)
	for i := 1; i < len(trend); i++ {
		s.Equal(trend[i-1].Month.AddMonths(1), trend[i].Month)
	}

	s.equalAmount("0", trend[0].Income)
	s.equalAmount("1000", trend[3].Income)
	s.equalAmount("250", trend[3].Expenses)
	s.equalAmount("700", trend[5].Expenses)
}

func (s *ReportServiceTestSuite) TestComputeSummary_RecordsMetrics() {
	_, err := s.service.ComputeSummary(s.ctx, s.owner.ID, s.januaryRange())
	s.Require().NoError(err)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.reportsTotal.WithLabelValues(ReportSummary, "ok")))
}

func (s *ReportServiceTestSuite) TestComputeBudgetComparison_MissingBudget() {
	s.addTransaction(s.owner.ID, s.groceries, "50", models.NewDate(2024, time.February, 3))
	s.addTransaction(s.owner.ID, s.groceries, "30", models.NewDate(2024, time.February, 29))
	s.addTransaction(s.owner.ID, s.groceries, "500", models.NewDate(2024, time.March, 1))
	s.addTransaction(s.owner.ID, s.salary, "3000", models.NewDate(2024, time.February, 1))
	s.addBudget(s.rent, "1000", "02", 2024)
	s.addBudget(s.groceries, "400", "03", 2024)

	rows, err := s.service.ComputeBudgetComparison(s.ctx, s.owner.ID, models.YearMonth{Year: 2024, Month: time.February})
	s.Require().NoError(err)

	// expense categories only, ordered by name
	s.Require().Len(rows, 3)
	s.Equal("Groceries", rows[0].CategoryName)
	s.equalAmount("0", rows[0].BudgetAmount)
	s.equalAmount("80.00", rows[0].ActualAmount)
	s.equalAmount("-80.00", rows[0].Difference)

	s.Equal("Rent", rows[1].CategoryName)
	s.equalAmount("1000", rows[1].BudgetAmount)
	s.equalAmount("0", rows[1].ActualAmount)
	s.equalAmount("1000", rows[1].Difference)

	s.Equal("Utilities", rows[2].CategoryName)
	s.True(rows[2].BudgetAmount.IsZero())
	s.True(rows[2].ActualAmount.IsZero())
	s.True(rows[2].Difference.IsZero())

	for _, row := range rows {
		s.Equal(2024, row.Period.Year)
		s.Equal(time.February, row.Period.Month)
	}
}

func (s *ReportServiceTestSuite) TestComputeBudgetComparison_NoCategories() {
	rows, err := s.service.ComputeBudgetComparison(s.ctx, s.other.ID, models.YearMonth{Year: 2024, Month: time.February})
	s.Require().NoError(err)
	s.NotNil(rows)
	s.Empty(rows)
}

func (s *ReportServiceTestSuite) TestResolveRange() {
	r, err := s.service.ResolveRange("", "")
	s.Require().NoError(err)
	s.Equal(models.NewDate(2024, time.March, 1), r.Start)
	s.Equal(models.NewDate(2024, time.March, 15), r.End)

	r, err = s.service.ResolveRange("2024-01-01", "")
	s.Require().NoError(err)
	s.Equal(models.NewDate(2024, time.January, 1), r.Start)
	s.Equal(models.NewDate(2024, time.March, 15), r.End)

	_, err = s.service.ResolveRange("2024-13-01", "")
	s.ErrorIs(err, ErrInvalidDate)

	_, err = s.service.ResolveRange("", "01/31/2024")
	s.ErrorIs(err, ErrInvalidDate)

	_, err = s.service.ResolveRange("2024-02-01", "2024-01-31")
	s.ErrorIs(err, ErrInvalidRange)

	r, err = s.service.ResolveRange("2024-01-31", "2024-01-31")
	s.Require().NoError(err)
	s.Equal(r.Start, r.End)
}

func (s *ReportServiceTestSuite) TestResolveMonth() {
	ym, err := s.service.ResolveMonth("")
	s.Require().NoError(err)
	s.Equal(models.YearMonth{Year: 2024, Month: time.March}, ym)

	ym, err = s.service.ResolveMonth("2023-11")
	s.Require().NoError(err)
	s.Equal(models.YearMonth{Year: 2023, Month: time.November}, ym)

	for _, bad := range []string{"2023-13", "2023", "Nov-2023", "2023-1"} {
		_, err = s.service.ResolveMonth(bad)
		s.ErrorIs(err, ErrInvalidMonth, bad)
	}
}

func TestComputeSummary_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	categoryRepo := repository_mocks.NewMockCategoryRepositoryInterface(ctrl)
	transactionRepo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
	budgetRepo := repository_mocks.NewMockBudgetRepositoryInterface(ctrl)
	metrics := NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)

	categoryRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
	transactionRepo.EXPECT().SumByCategory(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	transactionRepo.EXPECT().SumByType(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.TypeTotals{}, nil).AnyTimes()

	service := NewReportService(categoryRepo, transactionRepo, budgetRepo,
		NewActivityLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), metrics)

	summary, err := service.ComputeSummary(context.Background(), uuid.New(), models.DateRange{
		Start: models.NewDate(2024, time.January, 1),
		End:   models.NewDate(2024, time.January, 31),
	})

	if err == nil || summary != nil {
		t.Fatalf("expected failure, got summary=%v err=%v", summary, err)
	}
	if got := testutil.ToFloat64(metrics.reportsTotal.WithLabelValues(ReportSummary, "error")); got != 1 {
		t.Fatalf("expected one failed report, got %v", got)
	}
}
