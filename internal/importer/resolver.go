package importer

import (
	"errors"
	"fmt"

	"github.com/billfold/backend/internal/importer/parser"
	"github.com/billfold/backend/internal/models"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// resolveCategory determines the category of a draft transaction.
//
// A draft with an explicit category resolves by case-insensitive name
// lookup, a miss is an error since the source data expects the category
// to exist. Without an explicit category the first match rule accepting
// the description wins. No match is not an error, the transaction is
// stored without a category.
func resolveCategory(db *gorm.DB, rules []models.MatchRule, draft parser.Draft) (*uuid.UUID, error) {
	if draft.Category != "" {
		category, err := models.CategoryByName(db, draft.Category)
		if errors.Is(err, models.ErrResourceNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, draft.Category)
		}
		if err != nil {
			return nil, err
		}

		return &category.ID, nil
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, draft.Description) {
			id := rule.CategoryID
			return &id, nil
		}
	}

	return nil, nil
}
