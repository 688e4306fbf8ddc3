package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRule maps a description pattern to a category.
//
// Patterns use * as wildcard, e.g. "*COFFEE*". Rules are applied in
// priority order, the first match wins.
type MatchRule struct {
	DefaultModel
	Priority   uint
	Match      string
	Category   Category `json:"-"`
	CategoryID uuid.UUID
}

// MatchRules returns all match rules in their application order.
func MatchRules(db *gorm.DB) ([]MatchRule, error) {
	var rules []MatchRule
	err := db.Order("priority ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	return rules, nil
}
