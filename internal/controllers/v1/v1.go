// Package v1 implements the endpoints for the v1 API.
package v1

import (
	"errors"
	"fmt"
	"net/http"

	bf_uuid "github.com/billfold/backend/internal/uuid"

	"github.com/billfold/backend/internal/httputil"
	"github.com/billfold/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// httpError is used for error responses that contain a body.
type httpError struct {
	Error string `json:"error"`
}

// status translates an error into the status code of the response.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrDuplicateStatement),
		errors.Is(err, models.ErrTransactionConflict),
		errors.Is(err, models.ErrCategoryNameNotUnique),
		errors.Is(err, models.ErrBudgetNotUnique):
		return http.StatusConflict

	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

// e writes an error response for err and ends the request.
func e(c *gin.Context, err error) {
	c.JSON(status(err), httpError{Error: err.Error()})
}

// URIID binds the ID from the URI.
type URIID struct {
	ID bf_uuid.UUID `uri:"id" binding:"required"`
}

// UserQuery binds the user a request operates on.
type UserQuery struct {
	UserID bf_uuid.UUID `form:"userId" binding:"required"`
}

// RegisterRoutes registers all v1 routes.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", Get)

	RegisterStatementRoutes(r.Group("/statements"))
	RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterMatchRuleRoutes(r.Group("/match-rules"))
	RegisterBudgetRoutes(r.Group("/budgets"))
	RegisterSummaryRoutes(r.Group("/summaries"))
}

type V1Links struct {
	Statements   string `json:"statements"`
	Transactions string `json:"transactions"`
	Categories   string `json:"categories"`
	MatchRules   string `json:"matchRules"`
	Budgets      string `json:"budgets"`
	Summaries    string `json:"summaries"`
}

type V1Response struct {
	Links V1Links `json:"links"`
}

// Get returns the links to the resources of the v1 API.
func Get(c *gin.Context) {
	url := fmt.Sprintf("%s/v1", httputil.RequestURL(c))

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Statements:   url + "/statements",
			Transactions: url + "/transactions",
			Categories:   url + "/categories",
			MatchRules:   url + "/match-rules",
			Budgets:      url + "/budgets",
			Summaries:    url + "/summaries",
		},
	})
}
