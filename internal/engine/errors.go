package engine

import "errors"

var (
	ErrEmptyEntry  = errors.New("journal entry text is required")
	ErrInvalidMood = errors.New("mood must be between 1 and 10")
)
