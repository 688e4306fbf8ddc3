package models_test

import (
	"time"

	"github.com/billfold/backend/internal/models"
	"github.com/billfold/backend/internal/types"
	"github.com/shopspring/decimal"
)

// summaryFixture is the shared setup for the summary tests: one user
// with categorised and uncategorised transactions over two months.
type summaryFixture struct {
	user      models.User
	categoryA models.Category
	categoryB models.Category
}

func (suite *TestSuiteStandard) createSummaryFixture() summaryFixture {
	user := suite.createTestUser(models.User{})
	statementType := suite.createTestStatementType(models.StatementType{})
	statement := suite.createTestStatement(models.Statement{
		UserID:       user.ID,
		TypeID:       statementType.ID,
		BillingMonth: 1,
		BillingYear:  2018,
	})

	categoryA := suite.createTestCategory(models.Category{Name: "A"})
	categoryB := suite.createTestCategory(models.Category{Name: "B"})
	_ = suite.createTestBudget(models.Budget{UserID: user.ID, CategoryID: categoryA.ID, Amount: decimal.NewFromFloat(50)})

	january := time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC)
	february := time.Date(2018, 2, 15, 0, 0, 0, 0, time.UTC)

	for _, transaction := range []models.Transaction{
		{Amount: decimal.NewFromFloat(100), Date: january},
		{Amount: decimal.NewFromFloat(150), Date: january, CategoryID: &categoryA.ID},
		{Amount: decimal.NewFromFloat(-100), Date: january, CategoryID: &categoryA.ID},
		{Amount: decimal.NewFromFloat(3), Date: january, CategoryID: &categoryB.ID},
		{Amount: decimal.NewFromFloat(1000), Date: january, CategoryID: &categoryB.ID},
		{Amount: decimal.NewFromFloat(-10), Date: february, CategoryID: &categoryB.ID},
	} {
		transaction.StatementID = statement.ID
		transaction.UserID = user.ID
		_ = suite.createTestTransaction(transaction)
	}

	return summaryFixture{user: user, categoryA: categoryA, categoryB: categoryB}
}

func (suite *TestSuiteStandard) TestMonthlySummary() {
	fixture := suite.createSummaryFixture()

	summaries, err := models.MonthlySummary(models.DB, fixture.user.ID, types.NewMonth(2018, time.January))
	suite.Assert().Nil(err)
	suite.Require().Len(summaries, 3)

	suite.Assert().Equal("A", summaries[0].CategoryName)
	suite.Assert().True(summaries[0].Total.Equal(decimal.NewFromFloat(50)), "total is %s", summaries[0].Total)
	suite.Assert().True(summaries[0].Budget.Equal(decimal.NewFromFloat(50)), "budget is %s", summaries[0].Budget)

	suite.Assert().Equal("B", summaries[1].CategoryName)
	suite.Assert().True(summaries[1].Total.Equal(decimal.NewFromFloat(1003)), "total is %s", summaries[1].Total)
	suite.Assert().True(summaries[1].Budget.IsZero(), "budget is %s", summaries[1].Budget)

	suite.Assert().Equal(models.UncategorisedName, summaries[2].CategoryName)
	suite.Assert().True(summaries[2].Total.Equal(decimal.NewFromFloat(100)), "total is %s", summaries[2].Total)
	suite.Assert().True(summaries[2].Budget.IsZero(), "budget is %s", summaries[2].Budget)
}

func (suite *TestSuiteStandard) TestMonthlySummarySingleRow() {
	fixture := suite.createSummaryFixture()

	summaries, err := models.MonthlySummary(models.DB, fixture.user.ID, types.NewMonth(2018, time.February))
	suite.Assert().Nil(err)
	suite.Require().Len(summaries, 1)

	suite.Assert().Equal("B", summaries[0].CategoryName)
	suite.Assert().True(summaries[0].Total.Equal(decimal.NewFromFloat(-10)), "total is %s", summaries[0].Total)
}

func (suite *TestSuiteStandard) TestAnnualSummary() {
	fixture := suite.createSummaryFixture()

	summaries, err := models.AnnualSummary(models.DB, fixture.user.ID, 2018, false)
	suite.Assert().Nil(err)
	suite.Require().Len(summaries, 2)

	suite.Assert().Equal("A", summaries[0].CategoryName)
	suite.Assert().True(summaries[0].Months[0].Equal(decimal.NewFromFloat(50)), "January cell is %s", summaries[0].Months[0])
	suite.Assert().True(summaries[0].Total.Equal(decimal.NewFromFloat(50)), "total is %s", summaries[0].Total)
	suite.Assert().True(summaries[0].Budget.Equal(decimal.NewFromFloat(50)), "budget is %s", summaries[0].Budget)

	suite.Assert().Equal("B", summaries[1].CategoryName)
	suite.Assert().True(summaries[1].Months[0].Equal(decimal.NewFromFloat(1003)), "January cell is %s", summaries[1].Months[0])
	suite.Assert().True(summaries[1].Months[1].Equal(decimal.NewFromFloat(-10)), "February cell is %s", summaries[1].Months[1])
	suite.Assert().True(summaries[1].Total.Equal(decimal.NewFromFloat(993)), "total is %s", summaries[1].Total)
}

func (suite *TestSuiteStandard) TestAnnualSummaryCumulative() {
	user := suite.createTestUser(models.User{})
	statementType := suite.createTestStatementType(models.StatementType{})
	statement := suite.createTestStatement(models.Statement{
		UserID:       user.ID,
		TypeID:       statementType.ID,
		BillingMonth: 1,
		BillingYear:  2018,
	})
	category := suite.createTestCategory(models.Category{Name: "C"})
	_ = suite.createTestBudget(models.Budget{UserID: user.ID, CategoryID: category.ID, Amount: decimal.NewFromFloat(20)})

	_ = suite.createTestTransaction(models.Transaction{
		StatementID: statement.ID,
		UserID:      user.ID,
		CategoryID:  &category.ID,
		Date:        time.Date(2018, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromFloat(10),
	})
	_ = suite.createTestTransaction(models.Transaction{
		StatementID: statement.ID,
		UserID:      user.ID,
		CategoryID:  &category.ID,
		Date:        time.Date(2018, 2, 15, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromFloat(-5),
	})

	summaries, err := models.AnnualSummary(models.DB, user.ID, 2018, true)
	suite.Assert().Nil(err)
	suite.Require().Len(summaries, 1)

	// [10, -5, 0, ...] becomes [10, 5, 5, ...], total and budget are untouched
	suite.Assert().True(summaries[0].Months[0].Equal(decimal.NewFromFloat(10)), "January cell is %s", summaries[0].Months[0])
	for month := 1; month < 12; month++ {
		suite.Assert().True(summaries[0].Months[month].Equal(decimal.NewFromFloat(5)), "cell %d is %s", month, summaries[0].Months[month])
	}
	suite.Assert().True(summaries[0].Total.Equal(decimal.NewFromFloat(5)), "total is %s", summaries[0].Total)
	suite.Assert().True(summaries[0].Budget.Equal(decimal.NewFromFloat(20)), "budget is %s", summaries[0].Budget)
}

func (suite *TestSuiteStandard) TestAnnualSummaryBudgetOnlyCategory() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{Name: "Savings"})
	_ = suite.createTestBudget(models.Budget{UserID: user.ID, CategoryID: category.ID, Amount: decimal.NewFromFloat(200)})

	summaries, err := models.AnnualSummary(models.DB, user.ID, 2018, false)
	suite.Assert().Nil(err)
	suite.Require().Len(summaries, 1)

	suite.Assert().Equal("Savings", summaries[0].CategoryName)
	suite.Assert().True(summaries[0].Total.IsZero())
	suite.Assert().True(summaries[0].Budget.Equal(decimal.NewFromFloat(200)), "budget is %s", summaries[0].Budget)
}
