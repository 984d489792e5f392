package services

import (
	"context"
	"fmt"
	"time"

	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultSampleDays  = 90
	MaxSampleDays      = 365
	DefaultSampleCount = 100
	MaxSampleCount     = 1000

	biWeeklyDays = 14
	lastBillDay  = 28
)

type sampleCategory struct {
	name     string
	kind     string
	min, max float64
}

var sampleCategories = []sampleCategory{
	{"Salary", models.CategoryTypeIncome, 2500, 4500},
	{"Groceries", models.CategoryTypeExpense, 15, 250},
	{"Dining", models.CategoryTypeExpense, 8, 120},
	{"Transportation", models.CategoryTypeExpense, 10, 80},
	{"Shopping", models.CategoryTypeExpense, 25, 450},
	{"Entertainment", models.CategoryTypeExpense, 10, 60},
	{"Bills & Utilities", models.CategoryTypeExpense, 50, 250},
	{"Healthcare", models.CategoryTypeExpense, 20, 300},
}

var sampleMerchants = map[string][]string{
	"Groceries":      {"Kroger", "Whole Foods Market", "Trader Joe's", "Aldi", "Safeway"},
	"Dining":         {"Starbucks", "Chipotle Mexican Grill", "Panera Bread", "Five Guys"},
	"Transportation": {"Uber", "Lyft", "Shell", "Metro Transit"},
	"Shopping":       {"Amazon.com", "Best Buy", "Home Depot", "Target"},
	"Entertainment":  {"Netflix", "Spotify", "AMC Theatres"},
	"Healthcare":     {"CVS Pharmacy", "Walgreens", "City Dental"},
}

var sampleBills = []string{"Electric Company", "Water Utility", "Internet Provider"}

// SampleDataService fills an account with a plausible history of salary
// deposits, monthly bills and day-to-day purchases. It backs the
// development-only sample data endpoint.
type SampleDataService struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	seed            uint64
	now             func() time.Time
}

func NewSampleDataService(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
) SampleDataServiceInterface {
	return &SampleDataService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// Generate creates any missing sample categories and then count purchases
// spread over the last days days, plus salary and bill transactions for the
// same window. Out-of-range arguments are clamped.
func (s *SampleDataService) Generate(ctx context.Context, ownerID uuid.UUID, days, count int) (*models.SampleDataResult, error) {
	days = clamp(days, 1, MaxSampleDays)
	count = clamp(count, 1, MaxSampleCount)

	end := models.DateOf(s.now())
	result := &models.SampleDataResult{Range: models.DateRange{Start: end.AddDays(1 - days), End: end}}

	categories, created, err := s.ensureCategories(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	result.CategoriesCreated = created

	// A zero seed makes gofakeit pick a random one.
	g := &historyGenerator{faker: gofakeit.New(s.seed), categories: categories, ownerID: ownerID}
	transactions := g.salaries(result.Range)
	transactions = append(transactions, g.bills(result.Range)...)
	transactions = append(transactions, g.purchases(result.Range, count)...)

	for _, tx := range transactions {
		if err := s.transactionRepo.Create(ctx, tx); err != nil {
			return nil, fmt.Errorf("failed to create sample transaction: %w", err)
		}
		result.TransactionsCreated++
	}
	return result, nil
}

// ensureCategories returns the sample categories by name, creating the ones
// the owner does not have yet.
func (s *SampleDataService) ensureCategories(ctx context.Context, ownerID uuid.UUID) (map[string]*models.Category, int, error) {
	existing, err := s.categoryRepo.List(ctx, ownerID, models.CategoryFilters{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}

	byName := make(map[string]*models.Category, len(sampleCategories))
	for i := range existing {
		byName[existing[i].Name+"/"+existing[i].Type] = &existing[i]
	}

	result := make(map[string]*models.Category, len(sampleCategories))
	created := 0
	for _, sc := range sampleCategories {
		if c, ok := byName[sc.name+"/"+sc.kind]; ok {
			result[sc.name] = c
			continue
		}
		c := &models.Category{UserID: ownerID, Name: sc.name, Type: sc.kind}
		if err := s.categoryRepo.Create(ctx, c); err != nil {
			return nil, 0, fmt.Errorf("failed to create category %s: %w", sc.name, err)
		}
		result[sc.name] = c
		created++
	}
	return result, created, nil
}

type historyGenerator struct {
	faker      *gofakeit.Faker
	categories map[string]*models.Category
	ownerID    uuid.UUID
}

func (g *historyGenerator) salaries(r models.DateRange) []*models.Transaction {
	base := g.amount("Salary")
	var out []*models.Transaction
	for d := r.Start.AddDays(g.faker.Number(0, biWeeklyDays-1)); !d.After(r.End.Time); d = d.AddDays(biWeeklyDays) {
		out = append(out, g.transaction("Salary", base, "Direct Deposit - Salary", d))
	}
	return out
}

func (g *historyGenerator) bills(r models.DateRange) []*models.Transaction {
	var out []*models.Transaction
	for month := models.YearMonthOf(r.Start.Time); !month.Start().After(r.End.Time); month = month.AddMonths(1) {
		for _, payee := range sampleBills {
			day := month.Start().AddDays(g.faker.Number(0, lastBillDay-1))
			if !r.Contains(day) {
				continue
			}
			out = append(out, g.transaction("Bills & Utilities", g.amount("Bills & Utilities"), "Bill Payment - "+payee, day))
		}
	}
	return out
}

func (g *historyGenerator) purchases(r models.DateRange, count int) []*models.Transaction {
	names := make([]string, 0, len(sampleMerchants))
	for _, sc := range sampleCategories {
		if _, ok := sampleMerchants[sc.name]; ok {
			names = append(names, sc.name)
		}
	}

	span := int(r.End.Sub(r.Start.Time).Hours()/24) + 1
	out := make([]*models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		category := names[g.faker.Number(0, len(names)-1)]
		merchants := sampleMerchants[category]
		merchant := merchants[g.faker.Number(0, len(merchants)-1)]
		day := r.Start.AddDays(g.faker.Number(0, span-1))
		out = append(out, g.transaction(category, g.amount(category), "Purchase at "+merchant, day))
	}
	return out
}

func (g *historyGenerator) amount(category string) decimal.Decimal {
	for _, sc := range sampleCategories {
		if sc.name == category {
			return decimal.NewFromFloat(g.faker.Float64Range(sc.min, sc.max)).Round(models.AmountScale)
		}
	}
	return decimal.NewFromInt(10)
}

func (g *historyGenerator) transaction(category string, amount decimal.Decimal, description string, date models.Date) *models.Transaction {
	return &models.Transaction{
		UserID:      g.ownerID,
		CategoryID:  g.categories[category].ID,
		Amount:      amount,
		Description: description,
		Date:        date,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
