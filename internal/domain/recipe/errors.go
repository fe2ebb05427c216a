package recipe

import "errors"

var (
	ErrMissingTitle   = errors.New("recipe title is required")
	ErrNoIngredients  = errors.New("recipe must have at least one ingredient")
	ErrNoInstructions = errors.New("recipe must have at least one instruction")
)
