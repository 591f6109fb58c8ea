package placement

import "errors"

var (
	// ErrInvalidPlan indicates a placement plan entry is missing a card or
	// column id
	ErrInvalidPlan = errors.New("placement plan entry is incomplete")

	// ErrNoColumn indicates a board-membership toggle without a target column
	ErrNoColumn = errors.New("no column to place the card in")
)
