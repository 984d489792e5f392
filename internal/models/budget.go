package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MinBudgetYear = 1900
	MaxBudgetYear = 9999
)

var (
	ErrInvalidBudgetMonth = errors.New("month must be a two-digit value between 01 and 12")
	ErrInvalidBudgetYear  = fmt.Errorf("year must be between %d and %d", MinBudgetYear, MaxBudgetYear)
)

// Budget is the planned spend for one category in one calendar month. At most
// one budget exists per owner, category, month and year.
type Budget struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_owner_period,priority:1" json:"-"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_owner_period,priority:2" json:"category"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Month      string          `gorm:"type:varchar(2);not null;uniqueIndex:idx_budgets_owner_period,priority:3" json:"month"`
	Year       int             `gorm:"not null;uniqueIndex:idx_budgets_owner_period,priority:4" json:"year"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

func (b *Budget) Validate() error {
	if b.CategoryID == uuid.Nil {
		return ErrCategoryRequired
	}
	if b.Amount.LessThan(decimal.Zero) {
		return ErrNegativeAmount
	}
	if err := ValidateAmountScale(b.Amount); err != nil {
		return err
	}
	if !IsValidBudgetMonth(b.Month) {
		return ErrInvalidBudgetMonth
	}
	if b.Year < MinBudgetYear || b.Year > MaxBudgetYear {
		return ErrInvalidBudgetYear
	}
	return nil
}

// CategoryName returns the loaded category's name, or "" when the
// association was not preloaded.
func (b *Budget) CategoryName() string {
	if b.Category == nil {
		return ""
	}
	return b.Category.Name
}

// Period returns the month the budget applies to.
func (b *Budget) Period() YearMonth {
	m, _ := strconv.Atoi(b.Month)
	return YearMonth{Year: b.Year, Month: time.Month(m)}
}

func (b *Budget) TableName() string {
	return "budgets"
}

// IsValidBudgetMonth accepts "01" through "12".
func IsValidBudgetMonth(month string) bool {
	if len(month) != 2 || month[0] < '0' || month[0] > '1' || month[1] < '0' || month[1] > '9' {
		return false
	}
	m := int(month[0]-'0')*10 + int(month[1]-'0')
	return m >= 1 && m <= 12
}
