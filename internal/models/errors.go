package models

import "errors"

// Error sentinels for the two client-error classes: malformed input and
// dangling references. Anything else bubbling out of a repository is a store
// failure and maps to a server error. Match with errors.Is.
var (
	ErrValidation = errors.New("validation failed")

	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")

	// ErrDuplicateUser flags a registration whose username or email is
	// already taken. Maps to 409 rather than 400.
	ErrDuplicateUser = errors.New("user already exists")
)
