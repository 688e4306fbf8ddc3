// Package importer ingests statement exports into the database.
package importer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/billfold/backend/internal/importer/parser"
	"github.com/billfold/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngestParams identify the statement being uploaded.
type IngestParams struct {
	UserID       uuid.UUID
	FormatKey    string
	BillingMonth int
	BillingYear  int
}

// Ingest parses one statement export and stores it with all its
// transactions in a single database transaction.
//
// The input is parsed completely before anything is written, a parse
// error never leaves partial data behind. Every exit path either
// commits once or rolls back once: a duplicate billing period, an
// unknown explicit category or a row conflict discards the statement
// and all of its rows.
func Ingest(db *gorm.DB, params IngestParams, data string) (models.Statement, error) {
	var statementType models.StatementType
	err := db.First(&statementType, "key = ?", params.FormatKey).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Statement{}, fmt.Errorf("%w: %s", ErrUnknownFormat, params.FormatKey)
	}
	if err != nil {
		return models.Statement{}, err
	}

	parse, err := parser.For(statementType.Key)
	if err != nil {
		return models.Statement{}, err
	}

	var drafts []parser.Draft
	for draft, err := range parse(data) {
		if err != nil {
			return models.Statement{}, err
		}
		drafts = append(drafts, draft)
	}

	rules, err := models.MatchRules(db)
	if err != nil {
		return models.Statement{}, err
	}

	// All writes happen in one transaction so a failed ingestion can be
	// rolled back completely
	tx := db.Begin()
	if tx.Error != nil {
		return models.Statement{}, tx.Error
	}

	exists, err := models.StatementExists(tx, params.UserID, statementType.ID, params.BillingMonth, params.BillingYear)
	if err != nil {
		tx.Rollback()
		return models.Statement{}, err
	}
	if exists {
		tx.Rollback()
		return models.Statement{}, fmt.Errorf("%w: %s %d-%02d", models.ErrDuplicateStatement, statementType.Key, params.BillingYear, params.BillingMonth)
	}

	statement := models.Statement{
		UserID:       params.UserID,
		TypeID:       statementType.ID,
		BillingMonth: params.BillingMonth,
		BillingYear:  params.BillingYear,
	}
	err = tx.Create(&statement).Error
	if err != nil {
		tx.Rollback()
		return models.Statement{}, err
	}

	for _, draft := range drafts {
		categoryID, err := resolveCategory(tx, rules, draft)
		if err != nil {
			tx.Rollback()
			return models.Statement{}, err
		}

		transaction := models.Transaction{
			StatementID: statement.ID,
			UserID:      params.UserID,
			CategoryID:  categoryID,
			Date:        draft.Date,
			Description: draft.Description,
			Amount:      draft.Amount,
			ImportID:    strconv.Itoa(draft.Line),
		}
		err = tx.Create(&transaction).Error
		if err != nil {
			tx.Rollback()
			return models.Statement{}, err
		}
	}

	err = tx.Commit().Error
	if err != nil {
		return models.Statement{}, err
	}

	return statement, nil
}

// SeedStatementTypes stores the reference data for all registered
// statement formats. Existing rows are left untouched.
func SeedStatementTypes(db *gorm.DB) error {
	for _, format := range parser.All() {
		var count int64
		err := db.Model(&models.StatementType{}).Where("key = ?", format.Key).Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		err = db.Create(&models.StatementType{Key: format.Key, Description: format.Description}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
