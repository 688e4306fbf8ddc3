package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single statement row.
//
// The import ID is derived from the source data by the ingestion, rows
// of the same statement must not share it.
type Transaction struct {
	DefaultModel
	Statement   Statement `json:"-"`
	StatementID uuid.UUID `gorm:"uniqueIndex:statement_import_id"`
	UserID      uuid.UUID
	Category    *Category  `json:"-"`
	CategoryID  *uuid.UUID // nil when no category could be resolved
	Date        time.Time
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ImportID    string          `gorm:"uniqueIndex:statement_import_id"`
}

// BeforeSave sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// StatementTransaction is one row of a statement's transaction listing,
// with the category name resolved.
type StatementTransaction struct {
	ID           uuid.UUID       `json:"id"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   *uuid.UUID      `json:"categoryId"`
	CategoryName *string         `json:"categoryName"`
}

// StatementTransactions returns all transactions of one statement with
// their category names, ordered by date.
func StatementTransactions(db *gorm.DB, statementID uuid.UUID) ([]StatementTransaction, error) {
	transactions := make([]StatementTransaction, 0)

	err := db.Table("transactions").
		Select("transactions.id AS id, transactions.date, transactions.description, transactions.amount, "+
			"transactions.category_id AS category_id, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id AND categories.deleted_at IS NULL").
		Where("transactions.statement_id = ? AND transactions.deleted_at IS NULL", statementID).
		Order("transactions.date ASC, transactions.import_id ASC").
		Scan(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// UpdateTransactionCategory sets the category of exactly one transaction.
//
// This is the correction path for rows that were ingested without a
// category or with a wrong one. A nil category ID clears the category.
func UpdateTransactionCategory(db *gorm.DB, transactionID uuid.UUID, categoryID *uuid.UUID) error {
	var transaction Transaction
	err := db.First(&transaction, "id = ?", transactionID).Error
	if err != nil {
		return err
	}

	if categoryID != nil {
		err = db.First(&Category{}, "id = ?", *categoryID).Error
		if err != nil {
			return err
		}
	}

	return db.Model(&transaction).Select("CategoryID").Updates(Transaction{CategoryID: categoryID}).Error
}
