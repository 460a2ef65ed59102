package types

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error kinds returned by the service layer. Controllers translate them to
// HTTP statuses; anything unrecognized becomes a 500.

type ErrNotFound string

func (e ErrNotFound) Error() string { return string(e) + " not found" }

type ErrConflict string

func (e ErrConflict) Error() string { return string(e) }

type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type ErrForbidden string

func (e ErrForbidden) Error() string { return string(e) }

// StatusOf maps a service error to its HTTP status code.
func StatusOf(err error) int {
	var nf ErrNotFound
	var cf ErrConflict
	var vd ErrValidation
	var fb ErrForbidden
	switch {
	case errors.As(err, &nf):
		return fiber.StatusNotFound
	case errors.As(err, &cf):
		return fiber.StatusConflict
	case errors.As(err, &vd):
		return fiber.StatusBadRequest
	case errors.As(err, &fb):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}
