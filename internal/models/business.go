package models

import (
	"gorm.io/gorm"
)

// Business is the counterparty of a transaction, e.g. a shop or an employer.
type Business struct {
	DefaultModel
	Name string `gorm:"not null"`
}

func (Business) Self() string {
	return "Business"
}

func (b *Business) BeforeSave(_ *gorm.DB) (err error) {
	b.Name, err = normalizeName(b.Self(), b.Name)
	return
}
