package column

import "errors"

// Column-related errors
var (
	// Validation errors
	ErrEmptyName   = errors.New("name cannot be empty")
	ErrNameTooLong = errors.New("name cannot exceed 50 characters")
	ErrInvalidID   = errors.New("invalid column ID")

	// Business logic errors
	ErrDefaultColumn     = errors.New("cannot delete the default column")
	ErrColumnNotFound    = errors.New("column not found")
	ErrIncompleteReorder = errors.New("reorder must cover every column")
)
