package models

import (
	"gorm.io/gorm"
)

// Budget is a named budget.
type Budget struct {
	DefaultModel
	Name string `gorm:"not null"`
}

func (Budget) Self() string {
	return "Budget"
}

func (b *Budget) BeforeSave(_ *gorm.DB) (err error) {
	b.Name, err = normalizeName(b.Self(), b.Name)
	return
}
