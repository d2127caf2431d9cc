package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// maxAmount is the smallest absolute amount that does not fit into DECIMAL(20,8).
var maxAmount = decimal.New(1, 12)

// Amount is a decimal amount with at most 12 integer and 8 fractional digits.
type Amount struct {
	decimal.Decimal
}

// GormDBDataType stores amounts as text on SQLite. A DECIMAL column has
// NUMERIC affinity there and would convert the value to a float.
func (Amount) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "TEXT"
	}

	return "DECIMAL(20,8)"
}

// valid reports if the amount can be stored without rounding.
func (a Amount) valid() bool {
	return a.Abs().LessThan(maxAmount) && a.Equal(a.Round(8))
}

// Transaction is a payment to or from a business, filed under a category.
type Transaction struct {
	DefaultModel
	Amount      Amount    `gorm:"not null"`
	Time        time.Time `gorm:"not null"`
	CategoryID  uuid.UUID `gorm:"size:36;not null"`
	Category    Category
	BusinessID  uuid.UUID `gorm:"size:36;not null"`
	Business    Business
	Description string
}

func (Transaction) Self() string {
	return "Transaction"
}

// AfterFind updates the timestamps and the transaction time
// to use UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Time = t.Time.In(time.UTC)
	return nil
}

// BeforeSave
//   - trims whitespace from the description
//   - verifies that the amount fits into 12 integer and 8 fractional digits
//   - sets the timezone of the time to UTC
//   - verifies that the referenced category and business exist
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if !t.Amount.valid() {
		return fmt.Errorf("%w, got %s", ErrTransactionAmountInvalid, t.Amount)
	}

	if t.Time.IsZero() {
		return ErrTransactionTimeMissing
	}
	t.Time = t.Time.In(time.UTC)

	if t.CategoryID == uuid.Nil {
		return ErrTransactionCategoryMissing
	}

	if t.BusinessID == uuid.Nil {
		return ErrTransactionBusinessMissing
	}

	// A new session keeps the connection of the surrounding
	// transaction, but drops the conditions of the current statement
	db := tx.Session(&gorm.Session{NewDB: true})

	err := db.First(&Category{}, "id = ?", t.CategoryID).Error
	if err != nil {
		return referenceError(Category{}, t.CategoryID, err)
	}

	err = db.First(&Business{}, "id = ?", t.BusinessID).Error
	if err != nil {
		return referenceError(Business{}, t.BusinessID, err)
	}

	return nil
}

// referenceError converts a failed lookup of a referenced resource
// into ErrReferenceNotFound. All other errors are returned unchanged.
func referenceError(m Model, id uuid.UUID, err error) error {
	if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: no %s with ID %s", ErrReferenceNotFound, strings.ToLower(m.Self()), id)
	}

	return err
}
