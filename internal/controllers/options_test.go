package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/frugal-finance/backend/internal/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/api/budgets", "OPTIONS, GET, POST"},
		{"http://example.com/api/businesses", "OPTIONS, GET, POST"},
		{"http://example.com/api/categories", "OPTIONS, GET, POST"},
		{"http://example.com/api/transactions", "OPTIONS, GET, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

// TestOptionsDetail verifies that OPTIONS requests for single resources are handled correctly.
func (suite *TestSuiteStandard) TestOptionsDetail() {
	category := createTestCategory(suite.T(), "Groceries")
	business := createTestBusiness(suite.T(), "Corner Grocery")

	existing := map[string]string{
		"budgets":      createTestBudget(suite.T(), "Household").Data.ID.String(),
		"businesses":   business.Data.ID.String(),
		"categories":   category.Data.ID.String(),
		"transactions": createTestTransaction(suite.T(), transactionEditable(category.Data.ID, business.Data.ID)).Data.ID.String(),
	}

	for resource, id := range existing {
		tests := []struct {
			name   string
			id     string
			status int
		}{
			{"No resource with this ID", uuid.New().String(), http.StatusNotFound},
			{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
			{"Resource exists", id, http.StatusNoContent},
		}

		for _, tt := range tests {
			suite.T().Run(fmt.Sprintf("%s: %s", resource, tt.name), func(t *testing.T) {
				r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/api/%s/%s", resource, tt.id), "")
				test.AssertHTTPStatus(t, &r, tt.status)

				if tt.status == http.StatusNoContent {
					assert.Equal(t, "OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))
				}
			})
		}
	}
}
