package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is the monthly budget of one user for one category.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID       `gorm:"uniqueIndex:budget_user_category"`
	Category   Category        `json:"-"`
	CategoryID uuid.UUID       `gorm:"uniqueIndex:budget_user_category"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// UpsertBudget stores the budget amount for a user and category,
// updating the existing row if one exists.
func UpsertBudget(db *gorm.DB, userID, categoryID uuid.UUID, amount decimal.Decimal) (Budget, error) {
	// The category has to exist
	err := db.First(&Category{}, "id = ?", categoryID).Error
	if err != nil {
		return Budget{}, err
	}

	var budget Budget
	err = db.Where("user_id = ? AND category_id = ?", userID, categoryID).First(&budget).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return Budget{}, err
	}

	if errors.Is(err, ErrResourceNotFound) {
		budget = Budget{UserID: userID, CategoryID: categoryID, Amount: amount}
		err = db.Create(&budget).Error
		return budget, err
	}

	err = db.Model(&budget).Select("Amount").Updates(Budget{Amount: amount}).Error
	return budget, err
}

// Budgets returns all budgets of a user.
func Budgets(db *gorm.DB, userID uuid.UUID) ([]Budget, error) {
	budgets := make([]Budget, 0)
	err := db.Where("user_id = ?", userID).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}
