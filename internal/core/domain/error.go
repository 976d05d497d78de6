package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrProductNotFound = errors.New("product not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Business errors.
	ErrEmptyOrderItems    = errors.New("order must contain at least one item")
	ErrEmptyCustomerName  = errors.New("customer name is empty")
	ErrInvalidOrderStatus = errors.New("order status is not valid")
	ErrInvalidInstallment = errors.New("installment amount is not valid")
	ErrInsufficientStock  = errors.New("insufficient stock")
)
