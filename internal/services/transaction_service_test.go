package services

import (
	"context"
	"testing"
	"time"

	"budget-tracker/internal/database"
	"budget-tracker/internal/dto"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func amountPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func datePtr(year int, month time.Month, day int) *models.Date {
	d := models.NewDate(year, month, day)
	return &d
}

type TransactionServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	db        *database.DB
	service   TransactionServiceInterface
	owner     *models.User
	other     *models.User
	salary    *models.Category
	groceries *models.Category
	theirs    *models.Category
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	deps := newRecordingDeps(s.db)
	s.service = NewTransactionService(
		repositories.NewTransactionRepository(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		deps.audit, deps.activity, deps.metrics,
	)
	s.owner = database.CreateTestUser(s.T(), s.db, "owner")
	s.other = database.CreateTestUser(s.T(), s.db, "other")
	s.salary = database.CreateTestCategory(s.T(), s.db, s.owner.ID, "Salary", models.CategoryTypeIncome)
	s.groceries = database.CreateTestCategory(s.T(), s.db, s.owner.ID, "Groceries", models.CategoryTypeExpense)
	s.theirs = database.CreateTestCategory(s.T(), s.db, s.other.ID, "Theirs", models.CategoryTypeExpense)
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionServiceTestSuite) create(category *models.Category, amount string, date *models.Date) *models.Transaction {
	tx, err := s.service.Create(s.ctx, s.owner.ID, dto.TransactionInput{
		CategoryID: &category.ID,
		Amount:     amountPtr(amount),
		Date:       date,
	})
	s.Require().NoError(err)
	return tx
}

func (s *TransactionServiceTestSuite) TestCreate() {
	desc := "weekly shop"
	tx, err := s.service.Create(s.ctx, s.owner.ID, dto.TransactionInput{
		CategoryID:  &s.groceries.ID,
		Amount:      amountPtr("42.50"),
		Description: &desc,
		Date:        datePtr(2024, time.January, 10),
	})
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, tx.ID)
	s.Equal(s.owner.ID, tx.UserID)
	s.Equal("Groceries", tx.CategoryName())
	s.Equal(models.CategoryTypeExpense, tx.CategoryType())
	s.Equal("weekly shop", tx.Description)
}

func (s *TransactionServiceTestSuite) TestCreate_DefaultsDateToToday() {
	tx := s.create(s.groceries, "5", nil)
	s.Equal(models.DateOf(time.Now()), tx.Date)
}

func (s *TransactionServiceTestSuite) TestCreate_Validation() {
	cases := []struct {
		name  string
		in    dto.TransactionInput
		field string
	}{
		{"missing category", dto.TransactionInput{Amount: amountPtr("1")}, "category"},
		{"missing amount", dto.TransactionInput{CategoryID: &s.groceries.ID}, "amount"},
		{"zero amount", dto.TransactionInput{CategoryID: &s.groceries.ID, Amount: amountPtr("0")}, "amount"},
		{"negative amount", dto.TransactionInput{CategoryID: &s.groceries.ID, Amount: amountPtr("-200")}, "amount"},
		{"three decimals", dto.TransactionInput{CategoryID: &s.groceries.ID, Amount: amountPtr("1.005")}, "amount"},
		{"too large", dto.TransactionInput{CategoryID: &s.groceries.ID, Amount: amountPtr("100000000")}, "amount"},
		{"foreign category", dto.TransactionInput{CategoryID: &s.theirs.ID, Amount: amountPtr("1")}, "category"},
	}
	for _, tc := range cases {
		_, err := s.service.Create(s.ctx, s.owner.ID, tc.in)
		var verr *ValidationError
		s.Require().ErrorAs(err, &verr, tc.name)
		s.Equal(tc.field, verr.Field, tc.name)
	}
}

func (s *TransactionServiceTestSuite) TestOwnerIsolation() {
	mine := s.create(s.groceries, "10", datePtr(2024, time.January, 1))

	_, err := s.service.Get(s.ctx, s.other.ID, mine.ID)
	s.ErrorIs(err, ErrTransactionNotFound)

	_, err = s.service.Update(s.ctx, s.other.ID, mine.ID, dto.TransactionInput{Amount: amountPtr("1")})
	s.ErrorIs(err, ErrTransactionNotFound)

	s.ErrorIs(s.service.Delete(s.ctx, s.other.ID, mine.ID), ErrTransactionNotFound)

	list, err := s.service.List(s.ctx, s.other.ID, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *TransactionServiceTestSuite) TestUpdate_KeepsOmittedFields() {
	tx := s.create(s.groceries, "10", datePtr(2024, time.January, 15))

	updated, err := s.service.Update(s.ctx, s.owner.ID, tx.ID, dto.TransactionInput{Amount: amountPtr("12.34")})
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("12.34").Equal(updated.Amount))
	s.Equal(models.NewDate(2024, time.January, 15), updated.Date)
	s.Equal(s.groceries.ID, updated.CategoryID)

	moved, err := s.service.Update(s.ctx, s.owner.ID, tx.ID, dto.TransactionInput{CategoryID: &s.salary.ID})
	s.Require().NoError(err)
	s.Equal(models.CategoryTypeIncome, moved.CategoryType())

	_, err = s.service.Update(s.ctx, s.owner.ID, tx.ID, dto.TransactionInput{CategoryID: &s.theirs.ID})
	var verr *ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal("category", verr.Field)
}

func (s *TransactionServiceTestSuite) TestList_FiltersAndOrder() {
	s.create(s.salary, "1000", datePtr(2024, time.January, 5))
	s.create(s.groceries, "200", datePtr(2024, time.January, 10))
	s.create(s.groceries, "50", datePtr(2024, time.January, 20))
	s.create(s.groceries, "75", datePtr(2024, time.February, 2))

	all, err := s.service.List(s.ctx, s.owner.ID, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Require().Len(all, 4)
	for i := 1; i < len(all); i++ {
		s.False(all[i].Date.After(all[i-1].Date.Time), "transactions must be newest first")
	}

	start := models.NewDate(2024, time.January, 10)
	end := models.NewDate(2024, time.January, 31)
	january, err := s.service.List(s.ctx, s.owner.ID, models.TransactionFilters{StartDate: &start, EndDate: &end})
	s.Require().NoError(err)
	s.Len(january, 2)

	expenses, err := s.service.List(s.ctx, s.owner.ID, models.TransactionFilters{TransactionType: models.CategoryTypeExpense})
	s.Require().NoError(err)
	s.Len(expenses, 3)

	minAmount := decimal.NewFromInt(60)
	maxAmount := decimal.NewFromInt(500)
	mid, err := s.service.List(s.ctx, s.owner.ID, models.TransactionFilters{MinAmount: &minAmount, MaxAmount: &maxAmount})
	s.Require().NoError(err)
	s.Len(mid, 2)

	byCategory, err := s.service.List(s.ctx, s.owner.ID, models.TransactionFilters{CategoryID: &s.salary.ID})
	s.Require().NoError(err)
	s.Len(byCategory, 1)

	_, err = s.service.List(s.ctx, s.owner.ID, models.TransactionFilters{TransactionType: "refund"})
	var verr *ValidationError
	s.ErrorAs(err, &verr)
}

func (s *TransactionServiceTestSuite) TestDelete() {
	tx := s.create(s.groceries, "10", nil)

	s.Require().NoError(s.service.Delete(s.ctx, s.owner.ID, tx.ID))

	_, err := s.service.Get(s.ctx, s.owner.ID, tx.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
	s.ErrorIs(s.service.Delete(s.ctx, s.owner.ID, tx.ID), ErrTransactionNotFound)
}
