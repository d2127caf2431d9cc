package controllers

import (
	"fmt"

	"github.com/frugal-finance/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// BusinessEditable represents all user configurable parameters
type BusinessEditable struct {
	Name string `json:"name" binding:"required" example:"Corner Store" default:""` // Name of the business
}

func (editable BusinessEditable) model() models.Business {
	return models.Business{
		Name: editable.Name,
	}
}

type BusinessLinks struct {
	Self string `json:"self" example:"https://example.com/api/businesses/9f7b2f3c-1c5e-4f7e-8a52-5f1c3b0a9d41"` // The business itself
}

type Business struct {
	models.DefaultModel
	BusinessEditable
	Links BusinessLinks `json:"links"`
}

func newBusiness(c *gin.Context, model models.Business) Business {
	return Business{
		DefaultModel: model.DefaultModel,
		BusinessEditable: BusinessEditable{
			Name: model.Name,
		},
		Links: BusinessLinks{
			Self: fmt.Sprintf("%s/api/businesses/%s", c.GetString(string(models.DBContextURL)), model.ID),
		},
	}
}

type BusinessListResponse struct {
	Data  []Business `json:"data"`                                                          // List of businesses
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BusinessResponse struct {
	Data  *Business `json:"data"`                                                          // Data for the business
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
