package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category is a spending category. Names are unique without regard
// to casing.
type Category struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
}

// BeforeSave trims whitespace from the name.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// BeforeCreate checks that no category with the same name in different
// casing exists. The unique index only catches exact duplicates.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	var count int64
	err := tx.Model(&Category{}).Where("UPPER(name) = UPPER(?)", c.Name).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrCategoryNameNotUnique
	}

	return nil
}

// CategoryByName returns the category with the given name, matched
// case-insensitively.
func CategoryByName(db *gorm.DB, name string) (Category, error) {
	var category Category
	err := db.Where("UPPER(name) = UPPER(?)", strings.TrimSpace(name)).First(&category).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}
