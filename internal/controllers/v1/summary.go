package v1

import (
	"net/http"

	"github.com/billfold/backend/internal/httputil"
	"github.com/billfold/backend/internal/models"
	"github.com/billfold/backend/internal/types"
	bf_uuid "github.com/billfold/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterSummaryRoutes registers the routes for summaries.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly", httputil.OptionsGet)
	r.GET("/monthly", GetMonthlySummary)

	r.OPTIONS("/annual", httputil.OptionsGet)
	r.GET("/annual", GetAnnualSummary)
}

// MonthlySummaryQuery are the query parameters of the monthly summary.
type MonthlySummaryQuery struct {
	UserID bf_uuid.UUID `form:"userId" binding:"required"`
	Month  types.Month  `form:"month" binding:"required"`
}

// AnnualSummaryQuery are the query parameters of the annual summary.
type AnnualSummaryQuery struct {
	UserID     bf_uuid.UUID `form:"userId" binding:"required"`
	Year       int          `form:"year" binding:"required"`
	Cumulative bool         `form:"cumulative"`
}

// GetMonthlySummary returns the per-category totals of one month next
// to the category budgets.
func GetMonthlySummary(c *gin.Context) {
	var query MonthlySummaryQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		e(c, err)
		return
	}

	summaries, err := models.MonthlySummary(models.DB, query.UserID.UUID, query.Month)
	if err != nil {
		e(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetAnnualSummary returns the category by month matrix of one year,
// optionally with cumulative month cells.
func GetAnnualSummary(c *gin.Context) {
	var query AnnualSummaryQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		e(c, err)
		return
	}

	summaries, err := models.AnnualSummary(models.DB, query.UserID.UUID, query.Year, query.Cumulative)
	if err != nil {
		e(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}
