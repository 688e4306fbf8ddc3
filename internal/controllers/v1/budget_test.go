package v1_test

import (
	"fmt"
	"net/http"

	"github.com/billfold/backend/internal/models"
	"github.com/billfold/backend/test"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgets() {
	category := suite.createTestCategory("Groceries")

	recorder := test.Request(suite.T(), suite.router, http.MethodPut, "/v1/budgets",
		gin.H{"userId": suite.user.ID, "categoryId": category.ID, "amount": "100"})
	suite.Assert().Equal(http.StatusOK, recorder.Code, "body is %s", recorder.Body.String())

	// Setting the budget again overwrites the amount
	recorder = test.Request(suite.T(), suite.router, http.MethodPut, "/v1/budgets",
		gin.H{"userId": suite.user.ID, "categoryId": category.ID, "amount": "150"})
	suite.Assert().Equal(http.StatusOK, recorder.Code)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/budgets?userId=%s", suite.user.ID), nil)
	suite.Assert().Equal(http.StatusOK, recorder.Code)

	var budgets []models.Budget
	test.DecodeResponse(suite.T(), &recorder, &budgets)
	suite.Require().Len(budgets, 1)
	suite.Assert().True(budgets[0].Amount.Equal(decimal.NewFromFloat(150)), "amount is %s", budgets[0].Amount)
}

func (suite *TestSuiteStandard) TestSetBudgetUnknownCategory() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPut, "/v1/budgets",
		gin.H{"userId": suite.user.ID, "categoryId": uuid.New(), "amount": "100"})
	suite.Assert().Equal(http.StatusNotFound, recorder.Code)
}
