package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/frugal-finance/backend/internal/controllers"
	"github.com/frugal-finance/backend/internal/models"
	"github.com/frugal-finance/backend/internal/test"
	"github.com/google/uuid"
)

func createTestBusiness(t *testing.T, name string, expectedStatus ...int) controllers.BusinessResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/api/businesses", controllers.BusinessEditable{Name: name})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var business controllers.BusinessResponse
	test.DecodeResponse(t, &r, &business)

	return business
}

func (suite *TestSuiteStandard) TestBusinessesLifecycle() {
	b := createTestBusiness(suite.T(), "Corner Grocery")
	suite.Assert().Equal(fmt.Sprintf("http://example.com/api/businesses/%s", b.Data.ID), b.Data.Links.Self)

	r := test.Request(suite.T(), http.MethodGet, b.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPut, b.Data.Links.Self, controllers.BusinessEditable{Name: "Corner Grocery & Deli"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.BusinessResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("Corner Grocery & Deli", updated.Data.Name)

	r = test.Request(suite.T(), http.MethodDelete, b.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, b.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Equal("there is no business matching your query", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestBusinessesNameValidation() {
	createTestBusiness(suite.T(), "", http.StatusBadRequest)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/api/businesses", controllers.BusinessEditable{Name: "  "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), r.Body.Bytes()), models.ErrNameEmpty.Error())

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/api/businesses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Equal("the request body must not be empty", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestBusinessesNotFound() {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		suite.T().Run(method, func(t *testing.T) {
			r := test.Request(t, method, fmt.Sprintf("http://example.com/api/businesses/%s", uuid.New()), controllers.BusinessEditable{Name: "Test"})
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}
}
