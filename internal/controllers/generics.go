package controllers

import (
	"github.com/frugal-finance/backend/internal/httputil"
	"github.com/frugal-finance/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// db returns the database bound to the context of the request.
func db(c *gin.Context) *gorm.DB {
	return models.DB.WithContext(c.Request.Context())
}

// getModelByID parses the "id" path parameter and loads the resource with that ID.
func getModelByID[T models.Budget | models.Business | models.Category | models.Transaction](c *gin.Context) (resource T, err error) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		return resource, err
	}

	err = db(c).First(&resource, "id = ?", id).Error
	return resource, err
}

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS
// request for a specific resource.
func resourceOptionsDetail[T models.Budget | models.Business | models.Category | models.Transaction](c *gin.Context) {
	_, err := getModelByID[T](c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}
