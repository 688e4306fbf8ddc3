package models

import (
	"strings"
	"time"

	"github.com/billfold/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// UncategorisedName is the synthetic category label for transactions
// without a resolved category.
const UncategorisedName = "Uncategorised"

// CategoryMonthSummary is one row of the monthly summary: the total
// spent in one category compared to its budget.
type CategoryMonthSummary struct {
	CategoryName string          `json:"categoryName"`
	Total        decimal.Decimal `json:"total"`
	Budget       decimal.Decimal `json:"budget"`
}

// MonthlySummary returns the per-category totals of one user and month
// next to the category budgets.
//
// Only categories with at least one transaction in the month appear.
// Transactions without a category are grouped under UncategorisedName.
// Rows are ordered by category name, totals are rounded to two decimal
// places and the budget defaults to zero.
func MonthlySummary(db *gorm.DB, userID uuid.UUID, month types.Month) ([]CategoryMonthSummary, error) {
	summaries := make([]CategoryMonthSummary, 0)

	err := db.Table("transactions").
		Select("COALESCE(categories.name, '"+UncategorisedName+"') AS category_name, "+
			"SUM(transactions.amount) AS total, "+
			"COALESCE(MAX(budgets.amount), 0) AS budget").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id AND categories.deleted_at IS NULL").
		Joins("LEFT JOIN budgets ON budgets.category_id = transactions.category_id AND budgets.user_id = transactions.user_id AND budgets.deleted_at IS NULL").
		Where("transactions.user_id = ? AND transactions.date >= ? AND transactions.date < ? AND transactions.deleted_at IS NULL",
			userID, month.First(), month.Next()).
		Group("category_name").
		Order("category_name ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}

	for i := range summaries {
		summaries[i].Total = summaries[i].Total.Round(2)
	}

	return summaries, nil
}

// CategoryYearSummary is one row of the annual matrix: the monthly
// totals of one category over a full year.
type CategoryYearSummary struct {
	CategoryName string              `json:"categoryName"`
	Months       [12]decimal.Decimal `json:"months"` // index 0 = January
	Total        decimal.Decimal     `json:"total"`  // annual total, unaffected by the cumulative transform
	Budget       decimal.Decimal     `json:"budget"`
}

// annualRow is a single categorised transaction of the year. The query
// delivers these sorted by category name, then date - the pivot below
// relies on that ordering instead of sorting itself.
type annualRow struct {
	CategoryID   uuid.UUID
	CategoryName string
	Date         time.Time
	Amount       decimal.Decimal
}

// AnnualSummary returns the category by month matrix of one user and year.
//
// Each row holds the rounded total per month, the annual total and the
// category's budget. Categories without transactions still appear as
// all-zero rows when a budget links them. With cumulative set, the
// twelve cells are replaced by their left-to-right running sum after
// the matrix is built; total and budget keep the raw values.
func AnnualSummary(db *gorm.DB, userID uuid.UUID, year int, cumulative bool) ([]CategoryYearSummary, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var rows []annualRow
	err := db.Table("transactions").
		Select("transactions.category_id AS category_id, categories.name AS category_name, transactions.date, transactions.amount").
		Joins("JOIN categories ON categories.id = transactions.category_id AND categories.deleted_at IS NULL").
		Where("transactions.user_id = ? AND transactions.date >= ? AND transactions.date < ? AND transactions.deleted_at IS NULL",
			userID, from, to).
		Order("categories.name ASC, transactions.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	budgets, err := annualBudgets(db, userID)
	if err != nil {
		return nil, err
	}

	// Pivot the sorted rows into one row per category. A change of the
	// category name starts a new row.
	summaries := make([]CategoryYearSummary, 0)
	var current *CategoryYearSummary
	seen := make(map[uuid.UUID]bool)

	for _, row := range rows {
		if current == nil || current.CategoryName != row.CategoryName {
			summaries = append(summaries, CategoryYearSummary{
				CategoryName: row.CategoryName,
				Budget:       budgets[row.CategoryID].Amount,
			})
			current = &summaries[len(summaries)-1]
			seen[row.CategoryID] = true
		}

		month := int(row.Date.Month()) - 1
		current.Months[month] = current.Months[month].Add(row.Amount)
		current.Total = current.Total.Add(row.Amount)
	}

	for i := range summaries {
		for m := range summaries[i].Months {
			summaries[i].Months[m] = summaries[i].Months[m].Round(2)
		}
		summaries[i].Total = summaries[i].Total.Round(2)
	}

	// Budgeted categories without any transaction this year still get a row
	for categoryID, budget := range budgets {
		if !seen[categoryID] {
			summaries = append(summaries, CategoryYearSummary{
				CategoryName: budget.CategoryName,
				Budget:       budget.Amount,
			})
		}
	}

	slices.SortFunc(summaries, func(a, b CategoryYearSummary) int {
		return strings.Compare(a.CategoryName, b.CategoryName)
	})

	if cumulative {
		for i := range summaries {
			sum := decimal.Zero
			for m := range summaries[i].Months {
				sum = sum.Add(summaries[i].Months[m])
				summaries[i].Months[m] = sum
			}
		}
	}

	return summaries, nil
}

type annualBudget struct {
	CategoryName string
	Amount       decimal.Decimal
}

// annualBudgets returns the budget amount and category name per
// budgeted category of the user.
func annualBudgets(db *gorm.DB, userID uuid.UUID) (map[uuid.UUID]annualBudget, error) {
	var rows []struct {
		CategoryID   uuid.UUID
		CategoryName string
		Amount       decimal.Decimal
	}

	err := db.Table("budgets").
		Select("budgets.category_id AS category_id, categories.name AS category_name, budgets.amount").
		Joins("JOIN categories ON categories.id = budgets.category_id AND categories.deleted_at IS NULL").
		Where("budgets.user_id = ? AND budgets.deleted_at IS NULL", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	budgets := make(map[uuid.UUID]annualBudget, len(rows))
	for _, row := range rows {
		budgets[row.CategoryID] = annualBudget{CategoryName: row.CategoryName, Amount: row.Amount}
	}

	return budgets, nil
}
