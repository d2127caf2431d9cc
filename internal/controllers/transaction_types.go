package controllers

import (
	"fmt"
	"time"

	"github.com/frugal-finance/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"14.03" default:"0"`                                           // The amount of the transaction. At most 12 digits before and 8 digits after the decimal point
	Time        time.Time       `json:"time" binding:"required" example:"1815-12-10T18:43:00.271152Z"`                // Date and time of the transaction
	CategoryID  uuid.UUID       `json:"categoryId" binding:"required" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category of the transaction
	BusinessID  uuid.UUID       `json:"businessId" binding:"required" example:"9f7b2f3c-1c5e-4f7e-8a52-5f1c3b0a9d41"` // ID of the business the transaction was made with
	Description string          `json:"description" example:"Weekly groceries" default:""`                            // A description of the transaction
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Amount:      models.Amount{Decimal: editable.Amount},
		Time:        editable.Time,
		CategoryID:  editable.CategoryID,
		BusinessID:  editable.BusinessID,
		Description: editable.Description,
	}
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`   // The transaction itself
	Category string `json:"category" example:"https://example.com/api/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category of the transaction
	Business string `json:"business" example:"https://example.com/api/businesses/9f7b2f3c-1c5e-4f7e-8a52-5f1c3b0a9d41"` // The business of the transaction
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Amount:      model.Amount.Decimal,
			Time:        model.Time,
			CategoryID:  model.CategoryID,
			BusinessID:  model.BusinessID,
			Description: model.Description,
		},
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/api/transactions/%s", url, model.ID),
			Category: fmt.Sprintf("%s/api/categories/%s", url, model.CategoryID),
			Business: fmt.Sprintf("%s/api/businesses/%s", url, model.BusinessID),
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
