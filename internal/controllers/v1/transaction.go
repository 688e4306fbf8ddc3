package v1

import (
	"net/http"

	"github.com/billfold/backend/internal/httputil"
	"github.com/billfold/backend/internal/models"
	bf_uuid "github.com/billfold/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterTransactionRoutes registers the routes for transactions.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", httputil.OptionsPatch)
	r.PATCH("/:id", UpdateTransaction)
}

// TransactionUpdate is the request body for a transaction update. Only
// the category can be changed, a null category ID clears it.
type TransactionUpdate struct {
	CategoryID *bf_uuid.UUID `json:"categoryId"`
}

// UpdateTransaction sets or clears the category of one transaction.
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e(c, err)
		return
	}

	var update TransactionUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		e(c, err)
		return
	}

	var categoryID *uuid.UUID
	if update.CategoryID != nil {
		categoryID = &update.CategoryID.UUID
	}

	err = models.UpdateTransactionCategory(models.DB, uri.ID.UUID, categoryID)
	if err != nil {
		e(c, err)
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}
