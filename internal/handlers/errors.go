package handlers

import (
	"errors"

	"canteen/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForWrite maps a service error on a mutating request to an HTTP
// status. Bad input and dangling references are the client's fault; anything
// else is a store failure.
func statusForWrite(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return fiber.StatusBadRequest
	case isReferenceError(err):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// statusForRead maps a service error on a read to an HTTP status. A missing
// entity on a read is a 404 rather than a 400.
func statusForRead(err error) int {
	if isReferenceError(err) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

func isReferenceError(err error) bool {
	return errors.Is(err, models.ErrCategoryNotFound) ||
		errors.Is(err, models.ErrProductNotFound) ||
		errors.Is(err, models.ErrCustomerNotFound) ||
		errors.Is(err, models.ErrOrderNotFound)
}
