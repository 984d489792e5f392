package services

import (
	"context"
	"testing"
	"time"

	"budget-tracker/internal/database"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/stretchr/testify/suite"
)

type SampleDataServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	db           *database.DB
	service      *SampleDataService
	transactions repositories.TransactionRepositoryInterface
	owner        *models.User
}

func TestSampleDataServiceSuite(t *testing.T) {
	suite.Run(t, new(SampleDataServiceTestSuite))
}

func (s *SampleDataServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.transactions = repositories.NewTransactionRepository(s.db.DB)
	s.service = NewSampleDataService(repositories.NewCategoryRepository(s.db.DB), s.transactions).(*SampleDataService)
	s.service.seed = 42
	s.service.now = func() time.Time { return time.Date(2024, time.March, 31, 18, 0, 0, 0, time.UTC) }
	s.owner = database.CreateTestUser(s.T(), s.db, "owner")
}

func (s *SampleDataServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SampleDataServiceTestSuite) TestGenerate() {
	database.CreateTestCategory(s.T(), s.db, s.owner.ID, "Groceries", models.CategoryTypeExpense)

	result, err := s.service.Generate(s.ctx, s.owner.ID, 90, 50)
	s.Require().NoError(err)

	s.Equal(len(sampleCategories)-1, result.CategoriesCreated)
	s.Equal(models.NewDate(2024, time.January, 2), result.Range.Start)
	s.Equal(models.NewDate(2024, time.March, 31), result.Range.End)

	stored, err := s.transactions.List(s.ctx, s.owner.ID, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Len(stored, result.TransactionsCreated)
	// 50 purchases, six or seven salaries and up to nine bills
	s.GreaterOrEqual(result.TransactionsCreated, 50+6)

	salaries := 0
	for _, tx := range stored {
		s.True(result.Range.Contains(tx.Date), "date %s outside range", tx.Date)
		s.True(tx.Amount.IsPositive())
		s.NoError(models.ValidateAmountScale(tx.Amount))
		if tx.CategoryType() == models.CategoryTypeIncome {
			salaries++
		}
	}
	s.GreaterOrEqual(salaries, 6)
}

func (s *SampleDataServiceTestSuite) TestGenerate_ReusesCategories() {
	_, err := s.service.Generate(s.ctx, s.owner.ID, 30, 5)
	s.Require().NoError(err)

	result, err := s.service.Generate(s.ctx, s.owner.ID, 30, 5)
	s.Require().NoError(err)
	s.Zero(result.CategoriesCreated)

	var categories int64
	s.Require().NoError(s.db.Model(&models.Category{}).Where("user_id = ?", s.owner.ID).Count(&categories).Error)
	s.Equal(int64(len(sampleCategories)), categories)
}

func (s *SampleDataServiceTestSuite) TestGenerate_ClampsArguments() {
	result, err := s.service.Generate(s.ctx, s.owner.ID, 0, -3)
	s.Require().NoError(err)
	s.Equal(result.Range.Start, result.Range.End)
	s.GreaterOrEqual(result.TransactionsCreated, 1)

	result, err = s.service.Generate(s.ctx, s.owner.ID, MaxSampleDays+100, 1)
	s.Require().NoError(err)
	s.Equal(result.Range.End.AddDays(1-MaxSampleDays), result.Range.Start)
}
