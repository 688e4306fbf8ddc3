package v1

import (
	"net/http"

	"github.com/billfold/backend/internal/httputil"
	"github.com/billfold/backend/internal/importer"
	"github.com/billfold/backend/internal/models"
	bf_uuid "github.com/billfold/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterStatementRoutes registers the routes for statements.
func RegisterStatementRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetStatements)
	r.POST("", CreateStatement)

	r.OPTIONS("/:id/transactions", httputil.OptionsGet)
	r.GET("/:id/transactions", GetStatementTransactions)
}

// StatementCreate is the request body for a statement upload. Data
// carries the raw export exactly as produced by the bank.
type StatementCreate struct {
	UserID       bf_uuid.UUID `json:"userId" binding:"required"`
	FormatKey    string       `json:"formatKey" binding:"required"`
	BillingMonth int          `json:"billingMonth" binding:"required,min=1,max=12"`
	BillingYear  int          `json:"billingYear" binding:"required"`
	Data         string       `json:"data" binding:"required"`
}

// CreateStatement parses the uploaded export and stores the statement
// with all of its transactions. Nothing is stored when any row fails.
func CreateStatement(c *gin.Context) {
	var create StatementCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		e(c, err)
		return
	}

	statement, err := importer.Ingest(models.DB, importer.IngestParams{
		UserID:       create.UserID.UUID,
		FormatKey:    create.FormatKey,
		BillingMonth: create.BillingMonth,
		BillingYear:  create.BillingYear,
	}, create.Data)
	if err != nil {
		e(c, err)
		return
	}

	c.JSON(http.StatusCreated, statement)
}

// GetStatements returns the statement overview for a user.
func GetStatements(c *gin.Context) {
	var query UserQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		e(c, err)
		return
	}

	summaries, err := models.StatementSummaries(models.DB, query.UserID.UUID)
	if err != nil {
		e(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetStatementTransactions returns all transactions of one statement.
func GetStatementTransactions(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e(c, err)
		return
	}

	var statement models.Statement
	err = models.DB.First(&statement, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e(c, err)
		return
	}

	transactions, err := models.StatementTransactions(models.DB, statement.ID)
	if err != nil {
		e(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}
