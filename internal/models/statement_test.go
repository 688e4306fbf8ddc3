package models_test

import (
	"time"

	"github.com/billfold/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestStatementExists() {
	user := suite.createTestUser(models.User{})
	statementType := suite.createTestStatementType(models.StatementType{})

	_ = suite.createTestStatement(models.Statement{
		UserID:       user.ID,
		TypeID:       statementType.ID,
		BillingMonth: 1,
		BillingYear:  2018,
	})

	exists, err := models.StatementExists(models.DB, user.ID, statementType.ID, 1, 2018)
	suite.Assert().Nil(err)
	suite.Assert().True(exists, "stored statement is not found")

	exists, err = models.StatementExists(models.DB, user.ID, statementType.ID, 2, 2018)
	suite.Assert().Nil(err)
	suite.Assert().False(exists, "statement for another billing period must not exist")
}

func (suite *TestSuiteStandard) TestStatementDuplicate() {
	user := suite.createTestUser(models.User{})
	statementType := suite.createTestStatementType(models.StatementType{})

	statement := models.Statement{
		UserID:       user.ID,
		TypeID:       statementType.ID,
		BillingMonth: 3,
		BillingYear:  2019,
	}
	_ = suite.createTestStatement(statement)

	err := models.DB.Create(&models.Statement{
		UserID:       user.ID,
		TypeID:       statementType.ID,
		BillingMonth: 3,
		BillingYear:  2019,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrDuplicateStatement)
}

func (suite *TestSuiteStandard) TestStatementSummaries() {
	user := suite.createTestUser(models.User{})
	statementType := suite.createTestStatementType(models.StatementType{Description: "Test Card"})

	january := suite.createTestStatement(models.Statement{
		UserID:       user.ID,
		TypeID:       statementType.ID,
		BillingMonth: 1,
		BillingYear:  2018,
	})
	february := suite.createTestStatement(models.Statement{
		UserID:       user.ID,
		TypeID:       statementType.ID,
		BillingMonth: 2,
		BillingYear:  2018,
	})

	date := time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC)
	_ = suite.createTestTransaction(models.Transaction{
		StatementID: january.ID,
		UserID:      user.ID,
		Date:        date,
		Description: "COFFEE SHOP",
		Amount:      decimal.NewFromFloat(-12.50),
	})
	_ = suite.createTestTransaction(models.Transaction{
		StatementID: january.ID,
		UserID:      user.ID,
		Date:        date,
		Description: "REFUND",
		Amount:      decimal.NewFromFloat(7.50),
	})
	_ = suite.createTestTransaction(models.Transaction{
		StatementID: february.ID,
		UserID:      user.ID,
		Date:        date.AddDate(0, 1, 0),
		Description: "GROCERIES",
		Amount:      decimal.NewFromFloat(-80),
	})

	summaries, err := models.StatementSummaries(models.DB, user.ID)
	suite.Assert().Nil(err)
	suite.Require().Len(summaries, 2)

	suite.Assert().Equal(january.ID, summaries[0].ID)
	suite.Assert().Equal("Test Card", summaries[0].TypeDescription)
	suite.Assert().Equal(1, summaries[0].BillingMonth)
	suite.Assert().True(summaries[0].Debits.Equal(decimal.NewFromFloat(-12.50)), "debits are %s", summaries[0].Debits)
	suite.Assert().True(summaries[0].Credits.Equal(decimal.NewFromFloat(7.50)), "credits are %s", summaries[0].Credits)

	suite.Assert().Equal(february.ID, summaries[1].ID)
	suite.Assert().True(summaries[1].Debits.Equal(decimal.NewFromFloat(-80)), "debits are %s", summaries[1].Debits)
	suite.Assert().True(summaries[1].Credits.IsZero(), "credits are %s", summaries[1].Credits)
}

func (suite *TestSuiteStandard) TestStatementSummariesOtherUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	statementType := suite.createTestStatementType(models.StatementType{})

	statement := suite.createTestStatement(models.Statement{
		UserID:       user.ID,
		TypeID:       statementType.ID,
		BillingMonth: 1,
		BillingYear:  2018,
	})
	_ = suite.createTestTransaction(models.Transaction{
		StatementID: statement.ID,
		UserID:      user.ID,
		Amount:      decimal.NewFromFloat(-1),
	})

	summaries, err := models.StatementSummaries(models.DB, other.ID)
	suite.Assert().Nil(err)
	suite.Assert().Len(summaries, 0)
}
