package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/frugal-finance/backend/internal/controllers"
	"github.com/frugal-finance/backend/internal/models"
	"github.com/frugal-finance/backend/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// transactionEditable returns a valid transaction for the category and business.
func transactionEditable(categoryID, businessID uuid.UUID) controllers.TransactionEditable {
	return controllers.TransactionEditable{
		Amount:      decimal.NewFromFloat(42.17),
		Time:        time.Date(2024, 3, 14, 18, 30, 0, 0, time.UTC),
		CategoryID:  categoryID,
		BusinessID:  businessID,
		Description: "Weekly groceries",
	}
}

func createTestTransaction(t *testing.T, c controllers.TransactionEditable, expectedStatus ...int) controllers.TransactionResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/api/transactions", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction controllers.TransactionResponse
	test.DecodeResponse(t, &r, &transaction)

	return transaction
}

func (suite *TestSuiteStandard) TestTransactionsCreateGet() {
	category := createTestCategory(suite.T(), "Groceries")
	business := createTestBusiness(suite.T(), "Corner Grocery")

	editable := transactionEditable(category.Data.ID, business.Data.ID)
	editable.Description = "  Weekly groceries "
	editable.Time = time.Date(2024, 3, 14, 19, 30, 0, 0, time.FixedZone("CET", 3600))

	created := createTestTransaction(suite.T(), editable)
	suite.Require().NotNil(created.Data)

	suite.Assert().Equal(fmt.Sprintf("http://example.com/api/transactions/%s", created.Data.ID), created.Data.Links.Self)
	suite.Assert().Equal(category.Data.Links.Self, created.Data.Links.Category)
	suite.Assert().Equal(business.Data.Links.Self, created.Data.Links.Business)

	r := test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var fetched controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &fetched)

	suite.Assert().True(decimal.NewFromFloat(42.17).Equal(fetched.Data.Amount), "Amount is %s", fetched.Data.Amount)
	suite.Assert().True(editable.Time.Equal(fetched.Data.Time), "Time is %s", fetched.Data.Time)
	suite.Assert().Equal(time.UTC, fetched.Data.Time.Location())
	suite.Assert().Equal("Weekly groceries", fetched.Data.Description)
	suite.Assert().Equal(category.Data.ID, fetched.Data.CategoryID)
	suite.Assert().Equal(business.Data.ID, fetched.Data.BusinessID)
}

func (suite *TestSuiteStandard) TestTransactionsAmountPrecision() {
	category := createTestCategory(suite.T(), "Groceries")
	business := createTestBusiness(suite.T(), "Corner Grocery")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/transactions", fmt.Sprintf(`{
		"amount": "-1234.12345678",
		"time": "2024-03-14T18:30:00Z",
		"categoryId": "%s",
		"businessId": "%s"
	}`, category.Data.ID, business.Data.ID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &created)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	var fetched controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &fetched)

	suite.Assert().Equal("-1234.12345678", fetched.Data.Amount.String())
	suite.Assert().Equal("", fetched.Data.Description)
}

func (suite *TestSuiteStandard) TestTransactionsAmountBounds() {
	category := createTestCategory(suite.T(), "Groceries")
	business := createTestBusiness(suite.T(), "Corner Grocery")

	tests := []struct {
		name   string
		amount string
		status int
	}{
		{"Largest precision", "123456789012.12345678", http.StatusCreated},
		{"Negative largest precision", "-999999999999.99999999", http.StatusCreated},
		{"Nine decimals", "0.123456789", http.StatusBadRequest},
		{"Thirteen integer digits", "1234567890123", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/api/transactions", fmt.Sprintf(`{
				"amount": "%s",
				"time": "2024-03-14T18:30:00Z",
				"categoryId": "%s",
				"businessId": "%s"
			}`, tt.amount, category.Data.ID, business.Data.ID))
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusBadRequest {
				message := test.DecodeError(t, r.Body.Bytes())
				assert.Contains(t, message, models.ErrTransactionAmountInvalid.Error())
				assert.Contains(t, message, tt.amount)
				return
			}

			var created controllers.TransactionResponse
			test.DecodeResponse(t, &r, &created)

			r = test.Request(t, http.MethodGet, created.Data.Links.Self, "")
			var fetched controllers.TransactionResponse
			test.DecodeResponse(t, &r, &fetched)
			assert.Equal(t, tt.amount, fetched.Data.Amount.String())
		})
	}

	suite.T().Run("Update", func(t *testing.T) {
		created := createTestTransaction(t, transactionEditable(category.Data.ID, business.Data.ID))

		update := transactionEditable(category.Data.ID, business.Data.ID)
		update.Amount = decimal.RequireFromString("17.000000001")

		r := test.Request(t, http.MethodPut, created.Data.Links.Self, update)
		test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), models.ErrTransactionAmountInvalid.Error())
	})
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	category := createTestCategory(suite.T(), "Groceries")
	business := createTestBusiness(suite.T(), "Corner Grocery")

	deleted := createTestCategory(suite.T(), "Deleted")
	r := test.Request(suite.T(), http.MethodDelete, deleted.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	tests := []struct {
		name   string
		modify func(*controllers.TransactionEditable)
		err    error
	}{
		{"No time", func(e *controllers.TransactionEditable) { e.Time = time.Time{} }, nil},
		{"No category", func(e *controllers.TransactionEditable) { e.CategoryID = uuid.Nil }, nil},
		{"No business", func(e *controllers.TransactionEditable) { e.BusinessID = uuid.Nil }, nil},
		{"Non-existing category", func(e *controllers.TransactionEditable) { e.CategoryID = uuid.New() }, models.ErrReferenceNotFound},
		{"Non-existing business", func(e *controllers.TransactionEditable) { e.BusinessID = uuid.New() }, models.ErrReferenceNotFound},
		{"Deleted category", func(e *controllers.TransactionEditable) { e.CategoryID = deleted.Data.ID }, models.ErrReferenceNotFound},
		{"Business ID is a category", func(e *controllers.TransactionEditable) { e.BusinessID = category.Data.ID }, models.ErrReferenceNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			editable := transactionEditable(category.Data.ID, business.Data.ID)
			tt.modify(&editable)

			r := test.Request(t, http.MethodPost, "http://example.com/api/transactions", editable)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.err != nil {
				assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.err.Error())
			}
		})
	}

	suite.T().Run("Invalid amount", func(t *testing.T) {
		r := test.Request(t, http.MethodPost, "http://example.com/api/transactions", fmt.Sprintf(`{
			"amount": "a lot",
			"time": "2024-03-14T18:30:00Z",
			"categoryId": "%s",
			"businessId": "%s"
		}`, category.Data.ID, business.Data.ID))
		test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
	})

	suite.T().Run("Invalid time", func(t *testing.T) {
		r := test.Request(t, http.MethodPost, "http://example.com/api/transactions", fmt.Sprintf(`{
			"amount": 3,
			"time": "yesterday",
			"categoryId": "%s",
			"businessId": "%s"
		}`, category.Data.ID, business.Data.ID))
		test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
	})

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/api/transactions", "")
	var list controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0, "No transaction must have been created")
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	category := createTestCategory(suite.T(), "Groceries")
	business := createTestBusiness(suite.T(), "Corner Grocery")
	other := createTestBusiness(suite.T(), "Farmers Market")

	created := createTestTransaction(suite.T(), transactionEditable(category.Data.ID, business.Data.ID))

	update := controllers.TransactionEditable{
		Amount:     decimal.NewFromInt(-5),
		Time:       time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
		CategoryID: category.Data.ID,
		BusinessID: other.Data.ID,
	}

	r := test.Request(suite.T(), http.MethodPut, created.Data.Links.Self, update)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal(other.Data.Links.Self, updated.Data.Links.Business)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	var fetched controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &fetched)

	// All values are replaced, including the description
	suite.Assert().True(decimal.NewFromInt(-5).Equal(fetched.Data.Amount))
	suite.Assert().True(update.Time.Equal(fetched.Data.Time))
	suite.Assert().Equal(other.Data.ID, fetched.Data.BusinessID)
	suite.Assert().Equal("", fetched.Data.Description)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	category := createTestCategory(suite.T(), "Groceries")
	business := createTestBusiness(suite.T(), "Corner Grocery")
	created := createTestTransaction(suite.T(), transactionEditable(category.Data.ID, business.Data.ID))

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/transactions/%s", uuid.New()), transactionEditable(category.Data.ID, business.Data.ID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	broken := transactionEditable(uuid.New(), business.Data.ID)
	r = test.Request(suite.T(), http.MethodPut, created.Data.Links.Self, broken)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), models.ErrReferenceNotFound.Error())

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	var fetched controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &fetched)
	suite.Assert().Equal(category.Data.ID, fetched.Data.CategoryID, "The failed update must not change the transaction")
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	category := createTestCategory(suite.T(), "Groceries")
	business := createTestBusiness(suite.T(), "Corner Grocery")
	created := createTestTransaction(suite.T(), transactionEditable(category.Data.ID, business.Data.ID))

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var deleted controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &deleted)
	suite.Assert().Equal(created.Data.ID, deleted.Data.ID)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no transaction matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))

	// The referenced resources are unaffected
	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestTransactionsGetList() {
	category := createTestCategory(suite.T(), "Groceries")
	business := createTestBusiness(suite.T(), "Corner Grocery")

	first := createTestTransaction(suite.T(), transactionEditable(category.Data.ID, business.Data.ID))
	second := createTestTransaction(suite.T(), transactionEditable(category.Data.ID, business.Data.ID))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list controllers.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)

	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal(first.Data.ID, list.Data[0].ID)
	suite.Assert().Equal(second.Data.ID, list.Data[1].ID)
}

func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	category := createTestCategory(suite.T(), "Groceries")
	business := createTestBusiness(suite.T(), "Corner Grocery")
	created := createTestTransaction(suite.T(), transactionEditable(category.Data.ID, business.Data.ID))

	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	createTestTransaction(suite.T(), transactionEditable(category.Data.ID, business.Data.ID), http.StatusInternalServerError)
}
