package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrDuplicateStatement is returned when a statement for the same
	// user, statement type and billing period already exists.
	ErrDuplicateStatement = errors.New("a statement for this type and billing period already exists")

	// ErrTransactionConflict is returned when a transaction row collides
	// with an already stored row of the same statement.
	ErrTransactionConflict = errors.New("a transaction with this import ID already exists for the statement")

	ErrCategoryNameNotUnique = errors.New("the category name is already in use")
	ErrBudgetNotUnique       = errors.New("a budget for this category already exists")
)
