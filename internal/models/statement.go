package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Statement is one uploaded billing period for one user and statement type.
type Statement struct {
	DefaultModel
	User         User          `json:"-"`
	UserID       uuid.UUID     `gorm:"uniqueIndex:statement_period"`
	Type         StatementType `json:"-"`
	TypeID       uuid.UUID     `gorm:"uniqueIndex:statement_period"`
	BillingMonth int           `gorm:"uniqueIndex:statement_period"`
	BillingYear  int           `gorm:"uniqueIndex:statement_period"`
}

// StatementSummary is one row of the statement overview, with the
// debit and credit totals of the statement's transactions.
type StatementSummary struct {
	ID              uuid.UUID       `json:"id"`
	TypeDescription string          `json:"typeDescription"`
	BillingMonth    int             `json:"billingMonth"`
	BillingYear     int             `json:"billingYear"`
	Debits          decimal.Decimal `json:"debits"`
	Credits         decimal.Decimal `json:"credits"`
}

// StatementExists reports whether a statement for the same user, type
// and billing period is already stored.
func StatementExists(db *gorm.DB, userID, typeID uuid.UUID, billingMonth, billingYear int) (bool, error) {
	var count int64
	err := db.Model(&Statement{}).
		Where("user_id = ? AND type_id = ? AND billing_month = ? AND billing_year = ?", userID, typeID, billingMonth, billingYear).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// StatementSummaries returns all statements of a user together with the
// debit and credit totals of their transactions, ordered by billing period.
func StatementSummaries(db *gorm.DB, userID uuid.UUID) ([]StatementSummary, error) {
	summaries := make([]StatementSummary, 0)

	err := db.Table("statements").
		Select("statements.id AS id, "+
			"statement_types.description AS type_description, "+
			"statements.billing_month AS billing_month, "+
			"statements.billing_year AS billing_year, "+
			"SUM(CASE WHEN transactions.amount < 0 THEN transactions.amount ELSE 0 END) AS debits, "+
			"SUM(CASE WHEN transactions.amount > 0 THEN transactions.amount ELSE 0 END) AS credits").
		Joins("JOIN statement_types ON statement_types.id = statements.type_id").
		Joins("JOIN transactions ON transactions.statement_id = statements.id AND transactions.deleted_at IS NULL").
		Where("statements.user_id = ? AND statements.deleted_at IS NULL", userID).
		Group("statements.id, statement_types.description, statements.billing_month, statements.billing_year").
		Order("statements.billing_year ASC, statements.billing_month ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}

	return summaries, nil
}
