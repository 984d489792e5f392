package repositories

import (
	"errors"
	"strings"

	"budget-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ownedBy restricts a query to rows of the statement's table owned by ownerID.
// All user-owned reads and writes go through it.
func ownedBy(ownerID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: "user_id"},
			Value:  ownerID,
		})
	}
}

// inDateWindow restricts a query to rows whose date is in [start, endExclusive).
func inDateWindow(start, endExclusive models.Date) func(*gorm.DB) *gorm.DB {
	column := clause.Column{Table: clause.CurrentTable, Name: "date"}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Gte{Column: column, Value: start}).
			Where(clause.Lt{Column: column, Value: endExclusive})
	}
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
