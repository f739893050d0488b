package materials

import (
	"errors"
	"fmt"
)

var (
	ErrNoMaterials   = errors.New("no materials provided")
	ErrBatchTooLarge = errors.New("too many materials")
)

// FieldError reports a value in a numeric field that is not a number.
type FieldError struct {
	Index int
	Field string
	Value any
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("record %d: field %s has non-numeric value %v", e.Index, e.Field, e.Value)
}
