package v1_test

import (
	"fmt"
	"net/http"

	"github.com/billfold/backend/internal/importer"
	"github.com/billfold/backend/internal/models"
	"github.com/billfold/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) ingestTestStatement() []models.StatementTransaction {
	statement, err := importer.Ingest(models.DB, importer.IngestParams{
		UserID:       suite.user.ID,
		FormatKey:    "HSBC_CHK",
		BillingMonth: 1,
		BillingYear:  2018,
	}, "01/15/2018\tCOFFEE SHOP\t-3.00\n")
	if err != nil {
		suite.Assert().FailNow("Statement could not be ingested", "Error: %s", err)
	}

	transactions, err := models.StatementTransactions(models.DB, statement.ID)
	if err != nil {
		suite.Assert().FailNow("Transactions could not be read", "Error: %s", err)
	}

	return transactions
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	category := suite.createTestCategory("Coffee")
	transactions := suite.ingestTestStatement()
	suite.Require().Len(transactions, 1)

	url := fmt.Sprintf("/v1/transactions/%s", transactions[0].ID)

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, url, gin.H{"categoryId": category.ID})
	suite.Assert().Equal(http.StatusOK, recorder.Code, "body is %s", recorder.Body.String())

	var updated models.Transaction
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Require().NotNil(updated.CategoryID)
	suite.Assert().Equal(category.ID, *updated.CategoryID)

	// null clears the category again
	recorder = test.Request(suite.T(), suite.router, http.MethodPatch, url, gin.H{"categoryId": nil})
	suite.Assert().Equal(http.StatusOK, recorder.Code)

	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Nil(updated.CategoryID)
}

func (suite *TestSuiteStandard) TestUpdateTransactionNotFound() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", uuid.New()), gin.H{"categoryId": nil})
	suite.Assert().Equal(http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestUpdateTransactionUnknownCategory() {
	transactions := suite.ingestTestStatement()
	suite.Require().Len(transactions, 1)

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch,
		fmt.Sprintf("/v1/transactions/%s", transactions[0].ID), gin.H{"categoryId": uuid.New()})
	suite.Assert().Equal(http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestUpdateTransactionInvalidBody() {
	transactions := suite.ingestTestStatement()
	suite.Require().Len(transactions, 1)

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch,
		fmt.Sprintf("/v1/transactions/%s", transactions[0].ID), `{"categoryId": "not-a-uuid"}`)
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code)
}
