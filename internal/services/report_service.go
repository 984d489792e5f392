package services

import (
	"context"
	"fmt"
	"time"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	ReportSummary          = "summary"
	ReportBudgetComparison = "budget_comparison"
)

// ReportService computes summaries and budget comparisons from the owner's
// categories, transactions and budgets. It never writes.
type ReportService struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	activity        ActivityLoggerInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
}

func NewReportService(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	activity ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
) ReportServiceInterface {
	return &ReportService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		activity:        activity,
		metrics:         metrics,
		now:             time.Now,
	}
}

func (s *ReportService) today() models.Date {
	return models.DateOf(s.now())
}

// ResolveRange parses each bound on its own. A missing start defaults to the
// first day of the current month and a missing end to today.
func (s *ReportService) ResolveRange(startDate, endDate string) (models.DateRange, error) {
	today := s.today()
	r := models.DateRange{
		Start: models.YearMonthOf(today.Time).Start(),
		End:   today,
	}

	var err error
	if startDate != "" {
		if r.Start, err = models.ParseDate(startDate); err != nil {
			return models.DateRange{}, ErrInvalidDate
		}
	}
	if endDate != "" {
		if r.End, err = models.ParseDate(endDate); err != nil {
			return models.DateRange{}, ErrInvalidDate
		}
	}
	if r.Start.After(r.End.Time) {
		return models.DateRange{}, ErrInvalidRange
	}
	return r, nil
}

func (s *ReportService) ResolveMonth(month string) (models.YearMonth, error) {
	if month == "" {
		return models.YearMonthOf(s.now()), nil
	}
	ym, err := models.ParseYearMonth(month)
	if err != nil {
		return models.YearMonth{}, ErrInvalidMonth
	}
	return ym, nil
}

// ComputeSummary totals income and expenses over the range, breaks expenses
// down by category and adds a six month trend ending at the current month.
func (s *ReportService) ComputeSummary(ctx context.Context, ownerID uuid.UUID, dateRange models.DateRange) (*models.Summary, error) {
	started := time.Now()

	var (
		categories []models.Category
		totals     []models.CategoryTotal
		trend      = trendMonths(models.YearMonthOf(s.now()))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.List(gctx, ownerID, models.CategoryFilters{})
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.transactionRepo.SumByCategory(gctx, ownerID, dateRange.Start, dateRange.EndExclusive())
		return err
	})
	for i := range trend {
		item := &trend[i]
		g.Go(func() error {
			sums, err := s.transactionRepo.SumByType(gctx, ownerID, item.Month.Start(), item.Month.NextStart())
			if err != nil {
				return err
			}
			item.Income = sums.Income
			item.Expenses = sums.Expenses
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, ownerID, ReportSummary, err)
	}

	summary := summarize(categories, totals)
	summary.Range = dateRange
	summary.MonthlyTrend = trend

	s.done(ctx, ownerID, ReportSummary, len(summary.ExpensesByCategory), time.Since(started))
	return summary, nil
}

// ComputeBudgetComparison emits one row per expense category for the month.
// A category without a budget compares against zero.
func (s *ReportService) ComputeBudgetComparison(ctx context.Context, ownerID uuid.UUID, period models.YearMonth) ([]models.ComparisonRow, error) {
	started := time.Now()

	var (
		categories []models.Category
		budgets    []models.Budget
		totals     []models.CategoryTotal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = s.categoryRepo.List(gctx, ownerID, models.CategoryFilters{Type: models.CategoryTypeExpense})
		return err
	})
	g.Go(func() error {
		year := period.Year
		var err error
		budgets, err = s.budgetRepo.List(gctx, ownerID, models.BudgetFilters{Month: period.MonthString(), Year: &year})
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.transactionRepo.SumByCategory(gctx, ownerID, period.Start(), period.NextStart())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail(ctx, ownerID, ReportBudgetComparison, err)
	}

	rows := compareBudgets(categories, budgets, totals, period)

	s.done(ctx, ownerID, ReportBudgetComparison, len(rows), time.Since(started))
	return rows, nil
}

// summarize partitions the per-category totals by category type. Totals of
// categories missing from categories are ignored.
func summarize(categories []models.Category, totals []models.CategoryTotal) *models.Summary {
	byCategory := totalsByCategory(totals)

	summary := &models.Summary{
		TotalIncome:        decimal.Zero,
		TotalExpenses:      decimal.Zero,
		ExpensesByCategory: []models.CategoryExpense{},
	}
	for _, c := range categories {
		amount := byCategory[c.ID]
		switch c.Type {
		case models.CategoryTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(amount)
		case models.CategoryTypeExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(amount)
			if amount.IsPositive() {
				summary.ExpensesByCategory = append(summary.ExpensesByCategory, models.CategoryExpense{
					CategoryID:   c.ID,
					CategoryName: c.Name,
					Amount:       amount,
				})
			}
		}
	}
	summary.NetBalance = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary
}

func compareBudgets(categories []models.Category, budgets []models.Budget, totals []models.CategoryTotal, period models.YearMonth) []models.ComparisonRow {
	byCategory := totalsByCategory(totals)

	planned := make(map[uuid.UUID]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		planned[b.CategoryID] = b.Amount
	}

	rows := make([]models.ComparisonRow, 0, len(categories))
	for _, c := range categories {
		if !c.IsExpense() {
			continue
		}
		budget, ok := planned[c.ID]
		if !ok {
			budget = decimal.Zero
		}
		actual := byCategory[c.ID]
		rows = append(rows, models.ComparisonRow{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			BudgetAmount: budget,
			ActualAmount: actual,
			Difference:   budget.Sub(actual),
			Period:       period,
		})
	}
	return rows
}

// totalsByCategory indexes totals by category. Lookups of absent categories
// yield decimal zero.
func totalsByCategory(totals []models.CategoryTotal) map[uuid.UUID]decimal.Decimal {
	m := make(map[uuid.UUID]decimal.Decimal, len(totals))
	for _, t := range totals {
		m[t.CategoryID] = m[t.CategoryID].Add(t.Total)
	}
	return m
}

// trendMonths returns the models.TrendMonths months ending at current,
// oldest first, with zero sums.
func trendMonths(current models.YearMonth) []models.MonthlyTrendItem {
	items := make([]models.MonthlyTrendItem, models.TrendMonths)
	for i := range items {
		items[i] = models.MonthlyTrendItem{
			Month:    current.AddMonths(i - (models.TrendMonths - 1)),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
	}
	return items
}

func (s *ReportService) done(ctx context.Context, ownerID uuid.UUID, report string, rows int, elapsed time.Duration) {
	s.activity.LogReportComputed(ctx, ownerID, report, rows, elapsed)
	s.metrics.IncrementCounter(MetricReportComputed, map[string]string{"report": report, "status": "ok"})
	s.metrics.RecordProcessingTime(MetricReportDuration+":"+report, elapsed)
}

func (s *ReportService) fail(ctx context.Context, ownerID uuid.UUID, report string, err error) error {
	s.activity.LogReportFailed(ctx, ownerID, report, err)
	s.metrics.IncrementCounter(MetricReportComputed, map[string]string{"report": report, "status": "error"})
	return fmt.Errorf("failed to compute %s: %w", report, err)
}
