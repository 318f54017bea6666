package services

import "errors"

// Define common service errors
var (
	ErrNotFound   = errors.New("resource not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict") // e.g., duplicate application
	ErrValidation = errors.New("validation failed")
)
