package service

import (
	"errors"

	"github.com/atinyakov/fridgebook/internal/storage"
)

var (
	// ErrNotFound is returned when a recipe, fridge or meal does not exist.
	ErrNotFound = storage.ErrNotFound

	// ErrToggleInFlight is returned when the same bookmark is already being
	// toggled for the user.
	ErrToggleInFlight = errors.New("bookmark toggle already in progress")

	// ErrForbidden is returned when the user has not joined the fridge.
	ErrForbidden = errors.New("not a member of the fridge")

	ErrInvalidKey   = errors.New("invalid bookmark key")
	ErrInvalidInput = errors.New("invalid input")
)
