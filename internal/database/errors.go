package database

import "errors"

var (
	// ErrColumnNotFound indicates the referenced column row does not exist
	ErrColumnNotFound = errors.New("column not found")

	// ErrCardNotFound indicates the referenced note row does not exist
	ErrCardNotFound = errors.New("card not found")

	// ErrDefaultColumn indicates an attempt to delete the default column
	ErrDefaultColumn = errors.New("cannot delete the default column")

	// ErrNoDefaultColumn indicates the user has no default column to migrate
	// orphaned cards into
	ErrNoDefaultColumn = errors.New("no default column exists for user")
)
