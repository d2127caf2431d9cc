package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/frugal-finance/backend/internal/controllers"
	"github.com/frugal-finance/backend/internal/models"
	"github.com/frugal-finance/backend/internal/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func createTestCategory(t *testing.T, name string, expectedStatus ...int) controllers.CategoryResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/api/categories", controllers.CategoryEditable{Name: name})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var category controllers.CategoryResponse
	test.DecodeResponse(t, &r, &category)

	return category
}

func (suite *TestSuiteStandard) TestCategoriesCreateGet() {
	c := createTestCategory(suite.T(), "Groceries")
	suite.Assert().Equal(fmt.Sprintf("http://example.com/api/categories/%s", c.Data.ID), c.Data.Links.Self)

	r := test.Request(suite.T(), http.MethodGet, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var fetched controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &fetched)
	suite.Assert().Equal(c.Data.ID, fetched.Data.ID)
	suite.Assert().Equal("Groceries", fetched.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	tests := []struct {
		name string
		body any
		err  error
	}{
		{"Empty name", controllers.CategoryEditable{}, nil},
		{"Whitespace name", controllers.CategoryEditable{Name: " \t "}, models.ErrNameEmpty},
		{"Name is a number", `{ "name": 17 }`, nil},
		{"Not JSON", "Groceries", nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/api/categories", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.err != nil {
				assert.Equal(t, "the name must not be empty for category", test.DecodeError(t, r.Body.Bytes()))
			}
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/categories", "")
	var list controllers.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Data, 0, "No category must have been created")
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	c := createTestCategory(suite.T(), "Groceries")

	r := test.Request(suite.T(), http.MethodPut, c.Data.Links.Self, map[string]any{"name": "Food"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Food", updated.Data.Name)

	r = test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/api/categories/%s", uuid.New()), map[string]any{"name": "Food"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	c := createTestCategory(suite.T(), "Groceries")

	r := test.Request(suite.T(), http.MethodDelete, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, c.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no category matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}
