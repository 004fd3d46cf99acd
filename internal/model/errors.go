package model

import (
	"errors"
	"fmt"
)

var (
	ErrCollectionCorrupted = errors.New("bot collection is corrupted")
)

// ValidationError reports the first draft field that blocks a commit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
