package services

import (
	"context"
	"testing"

	"budget-tracker/internal/database"
	"budget-tracker/internal/dto"
	"budget-tracker/internal/models"
	"budget-tracker/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func intPtr(i int) *int { return &i }

type BudgetServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	db        *database.DB
	service   BudgetServiceInterface
	owner     *models.User
	other     *models.User
	groceries *models.Category
	rent      *models.Category
	theirs    *models.Category
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	deps := newRecordingDeps(s.db)
	s.service = NewBudgetService(
		repositories.NewBudgetRepository(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		deps.audit, deps.activity, deps.metrics,
	)
	s.owner = database.CreateTestUser(s.T(), s.db, "owner")
	s.other = database.CreateTestUser(s.T(), s.db, "other")
	s.groceries = database.CreateTestCategory(s.T(), s.db, s.owner.ID, "Groceries", models.CategoryTypeExpense)
	s.rent = database.CreateTestCategory(s.T(), s.db, s.owner.ID, "Rent", models.CategoryTypeExpense)
	s.theirs = database.CreateTestCategory(s.T(), s.db, s.other.ID, "Theirs", models.CategoryTypeExpense)
}

func (s *BudgetServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *BudgetServiceTestSuite) input(category *models.Category, amount, month string, year int) dto.BudgetInput {
	return dto.BudgetInput{
		CategoryID: &category.ID,
		Amount:     amountPtr(amount),
		Month:      strPtr(month),
		Year:       intPtr(year),
	}
}

func (s *BudgetServiceTestSuite) TestCreate() {
	budget, err := s.service.Create(s.ctx, s.owner.ID, s.input(s.groceries, "400.00", "02", 2024))
	s.Require().NoError(err)
	s.Equal(s.owner.ID, budget.UserID)
	s.Equal("02", budget.Month)
	s.Equal(2024, budget.Year)
	s.True(decimal.NewFromInt(400).Equal(budget.Amount))
}

func (s *BudgetServiceTestSuite) TestCreate_DuplicateIsConflict() {
	_, err := s.service.Create(s.ctx, s.owner.ID, s.input(s.groceries, "400", "02", 2024))
	s.Require().NoError(err)

	_, err = s.service.Create(s.ctx, s.owner.ID, s.input(s.groceries, "500", "02", 2024))
	s.ErrorIs(err, ErrBudgetExists)

	_, err = s.service.Create(s.ctx, s.owner.ID, s.input(s.groceries, "500", "03", 2024))
	s.NoError(err)
	_, err = s.service.Create(s.ctx, s.owner.ID, s.input(s.rent, "500", "02", 2024))
	s.NoError(err)
}

func (s *BudgetServiceTestSuite) TestCreate_Validation() {
	cases := []struct {
		name  string
		in    dto.BudgetInput
		field string
	}{
		{"missing category", dto.BudgetInput{Amount: amountPtr("1"), Month: strPtr("01"), Year: intPtr(2024)}, "category"},
		{"missing amount", dto.BudgetInput{CategoryID: &s.rent.ID, Month: strPtr("01"), Year: intPtr(2024)}, "amount"},
		{"missing month", dto.BudgetInput{CategoryID: &s.rent.ID, Amount: amountPtr("1"), Year: intPtr(2024)}, "month"},
		{"missing year", dto.BudgetInput{CategoryID: &s.rent.ID, Amount: amountPtr("1"), Month: strPtr("01")}, "year"},
		{"month 13", s.input(s.rent, "1", "13", 2024), "month"},
		{"single digit month", s.input(s.rent, "1", "1", 2024), "month"},
		{"year too small", s.input(s.rent, "1", "01", 1800), "year"},
		{"negative amount", s.input(s.rent, "-1", "01", 2024), "amount"},
		{"foreign category", s.input(s.theirs, "1", "01", 2024), "category"},
	}
	for _, tc := range cases {
		_, err := s.service.Create(s.ctx, s.owner.ID, tc.in)
		var verr *ValidationError
		s.Require().ErrorAs(err, &verr, tc.name)
		s.Equal(tc.field, verr.Field, tc.name)
	}
}

func (s *BudgetServiceTestSuite) TestUpdate() {
	budget, err := s.service.Create(s.ctx, s.owner.ID, s.input(s.groceries, "400", "02", 2024))
	s.Require().NoError(err)
	_, err = s.service.Create(s.ctx, s.owner.ID, s.input(s.groceries, "450", "03", 2024))
	s.Require().NoError(err)

	updated, err := s.service.Update(s.ctx, s.owner.ID, budget.ID, dto.BudgetInput{Amount: amountPtr("425.50")})
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("425.50").Equal(updated.Amount))
	s.Equal("02", updated.Month)

	_, err = s.service.Update(s.ctx, s.owner.ID, budget.ID, dto.BudgetInput{Month: strPtr("03")})
	s.ErrorIs(err, ErrBudgetExists)
}

func (s *BudgetServiceTestSuite) TestOwnerIsolation() {
	budget, err := s.service.Create(s.ctx, s.owner.ID, s.input(s.groceries, "400", "02", 2024))
	s.Require().NoError(err)

	_, err = s.service.Get(s.ctx, s.other.ID, budget.ID)
	s.ErrorIs(err, ErrBudgetNotFound)
	_, err = s.service.Update(s.ctx, s.other.ID, budget.ID, dto.BudgetInput{Amount: amountPtr("1")})
	s.ErrorIs(err, ErrBudgetNotFound)
	s.ErrorIs(s.service.Delete(s.ctx, s.other.ID, budget.ID), ErrBudgetNotFound)

	s.Require().NoError(s.service.Delete(s.ctx, s.owner.ID, budget.ID))
	_, err = s.service.Get(s.ctx, s.owner.ID, budget.ID)
	s.ErrorIs(err, ErrBudgetNotFound)
}

func (s *BudgetServiceTestSuite) TestList_Filters() {
	for _, in := range []dto.BudgetInput{
		s.input(s.groceries, "400", "01", 2024),
		s.input(s.groceries, "400", "02", 2024),
		s.input(s.rent, "900", "02", 2024),
		s.input(s.rent, "850", "02", 2023),
	} {
		_, err := s.service.Create(s.ctx, s.owner.ID, in)
		s.Require().NoError(err)
	}

	all, err := s.service.List(s.ctx, s.owner.ID, models.BudgetFilters{})
	s.Require().NoError(err)
	s.Len(all, 4)

	feb, err := s.service.List(s.ctx, s.owner.ID, models.BudgetFilters{Month: "02"})
	s.Require().NoError(err)
	s.Len(feb, 3)

	feb2024, err := s.service.List(s.ctx, s.owner.ID, models.BudgetFilters{Month: "02", Year: intPtr(2024)})
	s.Require().NoError(err)
	s.Len(feb2024, 2)

	rent, err := s.service.List(s.ctx, s.owner.ID, models.BudgetFilters{CategoryID: &s.rent.ID})
	s.Require().NoError(err)
	s.Len(rent, 2)

	_, err = s.service.List(s.ctx, s.owner.ID, models.BudgetFilters{Month: "2"})
	var verr *ValidationError
	s.ErrorAs(err, &verr)
}
