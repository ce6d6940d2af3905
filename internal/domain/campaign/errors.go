package campaign

import (
	"errors"
	"fmt"
)

var (
	ErrValidation     = errors.New("invalid campaign brief")
	ErrPresetNotFound = errors.New("preset not found")

	ErrBlankBrandName    = &ValidationError{Field: "brandName", Reason: "must not be blank"}
	ErrBlankProductFocus = &ValidationError{Field: "productFocus", Reason: "must not be blank"}
)

// ValidationError reports a brief that cannot be turned into a concept
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

// Is makes every ValidationError match ErrValidation, and two
// ValidationErrors match when they name the same field.
func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	var other *ValidationError
	if errors.As(target, &other) {
		return other.Field == e.Field
	}
	return false
}
