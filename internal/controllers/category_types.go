package controllers

import (
	"fmt"

	"github.com/frugal-finance/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string `json:"name" binding:"required" example:"Groceries" default:""` // Name of the category
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
	}
}

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category itself
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
		},
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/api/categories/%s", c.GetString(string(models.DBContextURL)), model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
