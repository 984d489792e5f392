package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Validate(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		wantErr  error
	}{
		{"income", Category{Name: "Salary", Type: CategoryTypeIncome}, nil},
		{"expense", Category{Name: "Groceries", Type: CategoryTypeExpense}, nil},
		{"blank name", Category{Name: "   ", Type: CategoryTypeExpense}, ErrCategoryNameMissing},
		{"bad type", Category{Name: "Misc", Type: "transfer"}, ErrInvalidCategoryType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	long := Category{Name: strings.Repeat("x", 101), Type: CategoryTypeIncome}
	assert.Error(t, long.Validate())
}

func TestCategory_TypeHelpers(t *testing.T) {
	assert.True(t, (&Category{Type: CategoryTypeExpense}).IsExpense())
	assert.True(t, (&Category{Type: CategoryTypeIncome}).IsIncome())
	assert.False(t, IsValidCategoryType(""))
}

func TestTransaction_Validate(t *testing.T) {
	valid := func() Transaction {
		return Transaction{
			CategoryID: uuid.New(),
			Amount:     decimal.RequireFromString("200.00"),
			Date:       NewDate(2024, time.January, 10),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{"valid", func(*Transaction) {}, nil},
		{"missing category", func(tx *Transaction) { tx.CategoryID = uuid.Nil }, ErrCategoryRequired},
		{"zero amount", func(tx *Transaction) { tx.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(tx *Transaction) { tx.Amount = decimal.RequireFromString("-5") }, ErrInvalidAmount},
		{"three decimals", func(tx *Transaction) { tx.Amount = decimal.RequireFromString("1.005") }, ErrAmountPrecision},
		{"too large", func(tx *Transaction) { tx.Amount = decimal.RequireFromString("100000000") }, ErrAmountTooLarge},
		{"max amount", func(tx *Transaction) { tx.Amount = decimal.RequireFromString("99999999.99") }, nil},
		{"long description", func(tx *Transaction) { tx.Description = strings.Repeat("d", 256) }, ErrDescriptionTooLong},
		{"missing date", func(tx *Transaction) { tx.Date = Date{} }, ErrTransactionDateZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestTransaction_BeforeCreateDefaultsDate(t *testing.T) {
	tx := Transaction{CategoryID: uuid.New(), Amount: decimal.NewFromInt(10)}

	require.NoError(t, tx.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Equal(t, DateOf(time.Now()), tx.Date)
}

func TestTransaction_CategoryAccessors(t *testing.T) {
	tx := Transaction{}
	assert.Empty(t, tx.CategoryName())
	assert.Empty(t, tx.CategoryType())

	tx.Category = &Category{Name: "Groceries", Type: CategoryTypeExpense}
	assert.Equal(t, "Groceries", tx.CategoryName())
	assert.Equal(t, CategoryTypeExpense, tx.CategoryType())
}

func TestBudget_Validate(t *testing.T) {
	valid := func() Budget {
		return Budget{
			CategoryID: uuid.New(),
			Amount:     decimal.RequireFromString("300.00"),
			Month:      "01",
			Year:       2024,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Budget)
		wantErr error
	}{
		{"valid", func(*Budget) {}, nil},
		{"zero amount allowed", func(b *Budget) { b.Amount = decimal.Zero }, nil},
		{"negative amount", func(b *Budget) { b.Amount = decimal.NewFromInt(-1) }, ErrNegativeAmount},
		{"month 00", func(b *Budget) { b.Month = "00" }, ErrInvalidBudgetMonth},
		{"month 13", func(b *Budget) { b.Month = "13" }, ErrInvalidBudgetMonth},
		{"single digit month", func(b *Budget) { b.Month = "1" }, ErrInvalidBudgetMonth},
		{"year too small", func(b *Budget) { b.Year = 1800 }, ErrInvalidBudgetYear},
		{"missing category", func(b *Budget) { b.CategoryID = uuid.Nil }, ErrCategoryRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBudget_Period(t *testing.T) {
	b := Budget{Month: "02", Year: 2024}
	assert.Equal(t, YearMonth{Year: 2024, Month: time.February}, b.Period())
}

func TestIsValidBudgetMonth(t *testing.T) {
	for m := 1; m <= 12; m++ {
		assert.True(t, IsValidBudgetMonth(YearMonth{Year: 2024, Month: time.Month(m)}.MonthString()))
	}
	for _, bad := range []string{"", "0", "00", "13", "19", "20", "1a", "001"} {
		assert.False(t, IsValidBudgetMonth(bad), bad)
	}
}
