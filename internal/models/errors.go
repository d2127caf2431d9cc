package models

import (
	"errors"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrReferenceNotFound = errors.New("there is no resource for the ID you specified in the reference to another resource")
	ErrNameEmpty         = errors.New("the name must not be empty")
)

// Transaction errors
var (
	ErrTransactionAmountInvalid   = errors.New("the amount must have at most 12 digits before and 8 digits after the decimal point")
	ErrTransactionTimeMissing     = errors.New("the time of the transaction must be set")
	ErrTransactionCategoryMissing = errors.New("the category of the transaction must be set")
	ErrTransactionBusinessMissing = errors.New("the business of the transaction must be set")
)

// Database connection errors
var (
	ErrUnsupportedDSN = errors.New("the database connection string is not supported")
)
