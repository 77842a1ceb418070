package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a missing catalog entry.
var ErrNotFound = errors.New("domain: not found")

// ValidationError marks caller input the pipeline refuses to process. It is
// the only condition a recommendation request surfaces as an error; every
// downstream failure degrades instead.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
