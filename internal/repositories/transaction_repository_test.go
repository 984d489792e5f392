package repositories

import (
	"context"
	"testing"
	"time"

	"budget-tracker/internal/database"
	"budget-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	ctx       context.Context
	db        *database.DB
	repo      TransactionRepositoryInterface
	owner     *models.User
	other     *models.User
	salary    *models.Category
	groceries *models.Category
	rent      *models.Category
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.owner = database.CreateTestUser(s.T(), s.db, "owner")
	s.other = database.CreateTestUser(s.T(), s.db, "other")
	s.salary = database.CreateTestCategory(s.T(), s.db, s.owner.ID, "Salary", models.CategoryTypeIncome)
	s.groceries = database.CreateTestCategory(s.T(), s.db, s.owner.ID, "Groceries", models.CategoryTypeExpense)
	s.rent = database.CreateTestCategory(s.T(), s.db, s.owner.ID, "Rent", models.CategoryTypeExpense)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) add(owner uuid.UUID, category *models.Category, amount string, date models.Date) *models.Transaction {
	tx := &models.Transaction{
		UserID:      owner,
		CategoryID:  category.ID,
		Amount:      decimal.RequireFromString(amount),
		Description: gofakeit.Sentence(3),
		Date:        date,
	}
	s.Require().NoError(s.repo.Create(s.ctx, tx))
	return tx
}

func jan(day int) models.Date {
	return models.NewDate(2024, time.January, day)
}

func (s *TransactionRepositorySuite) TestCreateAndGet_PreloadsCategory() {
	created := s.add(s.owner.ID, s.groceries, "200.00", jan(10))

	found, err := s.repo.GetByID(s.ctx, s.owner.ID, created.ID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("200").Equal(found.Amount))
	s.Equal(jan(10), found.Date)
	s.Equal("Groceries", found.CategoryName())
	s.Equal(models.CategoryTypeExpense, found.CategoryType())
}

func (s *TransactionRepositorySuite) TestCreate_Validation() {
	s.Error(s.repo.Create(s.ctx, nil))
	s.Error(s.repo.Create(s.ctx, &models.Transaction{
		UserID: s.owner.ID, CategoryID: s.groceries.ID, Amount: decimal.Zero, Date: jan(1),
	}))
}

func (s *TransactionRepositorySuite) TestGetByID_OtherOwnerIsNotFound() {
	otherCategory := database.CreateTestCategory(s.T(), s.db, s.other.ID, "Food", models.CategoryTypeExpense)
	theirs := s.add(s.other.ID, otherCategory, "10.00", jan(2))

	_, err := s.repo.GetByID(s.ctx, s.owner.ID, theirs.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestList_OrderAndFilters() {
	s.add(s.owner.ID, s.salary, "1000.00", jan(1))
	s.add(s.owner.ID, s.groceries, "200.00", jan(10))
	s.add(s.owner.ID, s.groceries, "50.00", jan(20))
	s.add(s.owner.ID, s.rent, "800.00", models.NewDate(2024, time.February, 1))
	otherCategory := database.CreateTestCategory(s.T(), s.db, s.other.ID, "Food", models.CategoryTypeExpense)
	s.add(s.other.ID, otherCategory, "5.00", jan(15))

	all, err := s.repo.List(s.ctx, s.owner.ID, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Require().Len(all, 4)
	s.Equal(models.NewDate(2024, time.February, 1), all[0].Date)
	s.Equal(jan(1), all[3].Date)
	s.Equal("Rent", all[0].CategoryName())

	start, end := jan(10), jan(31)
	inJanuary, err := s.repo.List(s.ctx, s.owner.ID, models.TransactionFilters{StartDate: &start, EndDate: &end})
	s.Require().NoError(err)
	s.Len(inJanuary, 2)

	categoryID := s.groceries.ID
	groceries, err := s.repo.List(s.ctx, s.owner.ID, models.TransactionFilters{CategoryID: &categoryID})
	s.Require().NoError(err)
	s.Len(groceries, 2)

	min, max := decimal.NewFromInt(50), decimal.NewFromInt(800)
	ranged, err := s.repo.List(s.ctx, s.owner.ID, models.TransactionFilters{MinAmount: &min, MaxAmount: &max})
	s.Require().NoError(err)
	s.Len(ranged, 3)

	expenses, err := s.repo.List(s.ctx, s.owner.ID, models.TransactionFilters{TransactionType: models.CategoryTypeExpense})
	s.Require().NoError(err)
	s.Len(expenses, 3)
	for _, tx := range expenses {
		s.Equal(models.CategoryTypeExpense, tx.CategoryType())
	}
}

func (s *TransactionRepositorySuite) TestUpdate() {
	tx := s.add(s.owner.ID, s.groceries, "20.00", jan(3))

	tx.Amount = decimal.RequireFromString("25.50")
	tx.CategoryID = s.rent.ID
	tx.Description = "corrected"
	s.Require().NoError(s.repo.Update(s.ctx, s.owner.ID, tx))

	found, err := s.repo.GetByID(s.ctx, s.owner.ID, tx.ID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("25.5").Equal(found.Amount))
	s.Equal("Rent", found.CategoryName())
	s.Equal("corrected", found.Description)
}

func (s *TransactionRepositorySuite) TestUpdateAndDelete_OtherOwnerIsNotFound() {
	tx := s.add(s.owner.ID, s.groceries, "20.00", jan(3))

	s.ErrorIs(s.repo.Update(s.ctx, s.other.ID, tx), ErrTransactionNotFound)
	s.ErrorIs(s.repo.Delete(s.ctx, s.other.ID, tx.ID), ErrTransactionNotFound)

	s.Require().NoError(s.repo.Delete(s.ctx, s.owner.ID, tx.ID))
	_, err := s.repo.GetByID(s.ctx, s.owner.ID, tx.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestSumByCategory() {
	s.add(s.owner.ID, s.salary, "1000.00", jan(1))
	s.add(s.owner.ID, s.groceries, "200.00", jan(10))
	s.add(s.owner.ID, s.groceries, "50.00", jan(31))
	s.add(s.owner.ID, s.groceries, "75.00", models.NewDate(2024, time.February, 1))

	totals, err := s.repo.SumByCategory(s.ctx, s.owner.ID, jan(1), models.NewDate(2024, time.February, 1))
	s.Require().NoError(err)

	byCategory := make(map[uuid.UUID]decimal.Decimal)
	for _, total := range totals {
		byCategory[total.CategoryID] = total.Total
	}
	s.Len(byCategory, 2)
	s.Equal("1000.00", byCategory[s.salary.ID].StringFixed(2))
	s.Equal("250.00", byCategory[s.groceries.ID].StringFixed(2))
}

func (s *TransactionRepositorySuite) TestSumByCategory_RoundsToCents() {
	s.add(s.owner.ID, s.groceries, "0.10", jan(5))
	s.add(s.owner.ID, s.groceries, "0.20", jan(6))

	totals, err := s.repo.SumByCategory(s.ctx, s.owner.ID, jan(1), jan(31))
	s.Require().NoError(err)
	s.Require().Len(totals, 1)
	s.True(decimal.RequireFromString("0.30").Equal(totals[0].Total), totals[0].Total.String())
}

func (s *TransactionRepositorySuite) TestSumByType() {
	s.add(s.owner.ID, s.salary, "1000.00", jan(1))
	s.add(s.owner.ID, s.groceries, "200.00", jan(10))
	s.add(s.owner.ID, s.rent, "50.00", jan(20))
	otherCategory := database.CreateTestCategory(s.T(), s.db, s.other.ID, "Food", models.CategoryTypeExpense)
	s.add(s.other.ID, otherCategory, "999.00", jan(15))

	totals, err := s.repo.SumByType(s.ctx, s.owner.ID, jan(1), models.NewDate(2024, time.February, 1))
	s.Require().NoError(err)
	s.Equal("1000.00", totals.Income.StringFixed(2))
	s.Equal("250.00", totals.Expenses.StringFixed(2))

	empty, err := s.repo.SumByType(s.ctx, s.owner.ID, models.NewDate(2023, time.June, 1), models.NewDate(2023, time.July, 1))
	s.Require().NoError(err)
	s.True(empty.Income.IsZero())
	s.True(empty.Expenses.IsZero())
}
