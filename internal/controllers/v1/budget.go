package v1

import (
	"net/http"

	"github.com/billfold/backend/internal/httputil"
	"github.com/billfold/backend/internal/models"
	bf_uuid "github.com/billfold/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for budgets.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPut)
	r.GET("", GetBudgets)
	r.PUT("", SetBudget)
}

// BudgetSet is the request body for setting a budget.
type BudgetSet struct {
	UserID     bf_uuid.UUID    `json:"userId" binding:"required"`
	CategoryID bf_uuid.UUID    `json:"categoryId" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
}

// GetBudgets returns all budgets of a user.
func GetBudgets(c *gin.Context) {
	var query UserQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		e(c, err)
		return
	}

	budgets, err := models.Budgets(models.DB, query.UserID.UUID)
	if err != nil {
		e(c, err)
		return
	}

	c.JSON(http.StatusOK, budgets)
}

// SetBudget stores the budget amount for a user and category,
// overwriting an existing amount.
func SetBudget(c *gin.Context) {
	var set BudgetSet
	err := httputil.BindData(c, &set)
	if err != nil {
		e(c, err)
		return
	}

	budget, err := models.UpsertBudget(models.DB, set.UserID.UUID, set.CategoryID.UUID, set.Amount)
	if err != nil {
		e(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}
