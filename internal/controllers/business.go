package controllers

import (
	"net/http"

	"github.com/frugal-finance/backend/internal/httputil"
	"github.com/frugal-finance/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBusinessRoutes registers the routes for businesses with
// the RouterGroup that is passed.
func RegisterBusinessRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBusinessList)
		r.GET("", GetBusinesses)
		r.POST("", CreateBusiness)
	}

	// Business with ID
	{
		r.OPTIONS("/:id", OptionsBusinessDetail)
		r.GET("/:id", GetBusiness)
		r.PUT("/:id", UpdateBusiness)
		r.DELETE("/:id", DeleteBusiness)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Businesses
// @Success		204
// @Router			/api/businesses [options]
func OptionsBusinessList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Businesses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/businesses/{id} [options]
func OptionsBusinessDetail(c *gin.Context) {
	resourceOptionsDetail[models.Business](c)
}

// @Summary		Create business
// @Description	Creates a new business
// @Tags			Businesses
// @Accept			json
// @Produce		json
// @Success		201		{object}	BusinessResponse
// @Failure		400		{object}	BusinessResponse
// @Failure		500		{object}	BusinessResponse
// @Param			business	body		BusinessEditable	true	"Business"
// @Router			/api/businesses [post]
func CreateBusiness(c *gin.Context) {
	var editable BusinessEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BusinessResponse{
			Error: &s,
		})
		return
	}

	business := editable.model()
	err = db(c).Create(&business).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BusinessResponse{
			Error: &s,
		})
		return
	}

	data := newBusiness(c, business)
	c.Header("Location", data.Links.Self)
	c.JSON(http.StatusCreated, BusinessResponse{Data: &data})
}

// @Summary		List businesses
// @Description	Returns a list of all businesses
// @Tags			Businesses
// @Produce		json
// @Success		200	{object}	BusinessListResponse
// @Failure		500	{object}	BusinessListResponse
// @Router			/api/businesses [get]
func GetBusinesses(c *gin.Context) {
	var businesses []models.Business
	err := db(c).Order("created_at ASC").Find(&businesses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BusinessListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Business, 0, len(businesses))
	for _, business := range businesses {
		data = append(data, newBusiness(c, business))
	}

	c.JSON(http.StatusOK, BusinessListResponse{Data: data})
}

// @Summary		Get business
// @Description	Returns a specific business
// @Tags			Businesses
// @Produce		json
// @Success		200	{object}	BusinessResponse
// @Failure		400	{object}	BusinessResponse
// @Failure		404	{object}	BusinessResponse
// @Failure		500	{object}	BusinessResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/businesses/{id} [get]
func GetBusiness(c *gin.Context) {
	business, err := getModelByID[models.Business](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BusinessResponse{
			Error: &s,
		})
		return
	}

	data := newBusiness(c, business)
	c.JSON(http.StatusOK, BusinessResponse{Data: &data})
}

// @Summary		Update business
// @Description	Replaces all editable values of an existing business
// @Tags			Businesses
// @Accept			json
// @Produce		json
// @Success		200		{object}	BusinessResponse
// @Failure		400		{object}	BusinessResponse
// @Failure		404		{object}	BusinessResponse
// @Failure		500		{object}	BusinessResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			business	body		BusinessEditable	true	"Business"
// @Router			/api/businesses/{id} [put]
func UpdateBusiness(c *gin.Context) {
	business, err := getModelByID[models.Business](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BusinessResponse{
			Error: &s,
		})
		return
	}

	var editable BusinessEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BusinessResponse{
			Error: &s,
		})
		return
	}

	business.Name = editable.Name
	err = db(c).Model(&business).Select("*").Omit("ID", "CreatedAt", "DeletedAt").Updates(&business).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BusinessResponse{
			Error: &s,
		})
		return
	}

	data := newBusiness(c, business)
	c.JSON(http.StatusOK, BusinessResponse{Data: &data})
}

// @Summary		Delete business
// @Description	Deletes a business and returns it one last time
// @Tags			Businesses
// @Produce		json
// @Success		200	{object}	BusinessResponse
// @Failure		400	{object}	BusinessResponse
// @Failure		404	{object}	BusinessResponse
// @Failure		500	{object}	BusinessResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/api/businesses/{id} [delete]
func DeleteBusiness(c *gin.Context) {
	business, err := getModelByID[models.Business](c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BusinessResponse{
			Error: &s,
		})
		return
	}

	err = db(c).Delete(&business).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BusinessResponse{
			Error: &s,
		})
		return
	}

	data := newBusiness(c, business)
	c.JSON(http.StatusOK, BusinessResponse{Data: &data})
}
