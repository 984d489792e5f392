package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MaxDescriptionLength = 255
	AmountScale          = 2
)

var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrAmountPrecision     = errors.New("amount must have at most 2 decimal places")
	ErrAmountTooLarge      = errors.New("amount must have at most 8 digits before the decimal point")
	ErrDescriptionTooLong  = errors.New("description must be at most 255 characters")
	ErrCategoryRequired    = errors.New("category is required")
	ErrTransactionDateZero = errors.New("date is required")

	// decimal(10,2)
	maxAmount = decimal.New(1, 8)
)

// Transaction records one movement of money against a category. Amount is a
// positive magnitude; the category type decides whether it is income or an
// expense.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(255);not null;default:''" json:"description"`
	Date        Date            `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.Date.IsZero() {
		t.Date = DateOf(now)
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

func (t *Transaction) Validate() error {
	if t.CategoryID == uuid.Nil {
		return ErrCategoryRequired
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if err := ValidateAmountScale(t.Amount); err != nil {
		return err
	}
	if len(t.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if t.Date.IsZero() {
		return ErrTransactionDateZero
	}
	return nil
}

// CategoryName returns the loaded category's name, or "" when the
// association was not preloaded.
func (t *Transaction) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

// CategoryType returns the loaded category's type, or "" when the
// association was not preloaded.
func (t *Transaction) CategoryType() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Type
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// ValidateAmountScale checks that d fits a decimal(10,2) column.
func ValidateAmountScale(d decimal.Decimal) error {
	if !d.Equal(d.Truncate(AmountScale)) {
		return ErrAmountPrecision
	}
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return ErrAmountTooLarge
	}
	return nil
}
