package controllers

import (
	"fmt"

	"github.com/frugal-finance/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Name string `json:"name" binding:"required" example:"Household" default:""` // Name of the budget
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name: editable.Name,
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget itself
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name: model.Name,
		},
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/api/budgets/%s", c.GetString(string(models.DBContextURL)), model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
