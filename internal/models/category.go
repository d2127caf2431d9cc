package models

import (
	"gorm.io/gorm"
)

// Category groups transactions by what the money was spent on.
type Category struct {
	DefaultModel
	Name string `gorm:"not null"`
}

func (Category) Self() string {
	return "Category"
}

func (c *Category) BeforeSave(_ *gorm.DB) (err error) {
	c.Name, err = normalizeName(c.Self(), c.Name)
	return
}
