package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrUnknownUser    = errors.New("unknown user")
	ErrUsernameExists = errors.New("username already exists")

	// Visit ledger errors
	ErrVisitNotFound = errors.New("visit not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrAlreadyRated  = errors.New("visit has already been rated")

	// Navigation errors
	ErrInvalidMode = errors.New("invalid transport mode")

	// Catalog errors
	ErrCourseNotFound = errors.New("course not found")
)
