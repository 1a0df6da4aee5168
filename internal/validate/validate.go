package validate

import (
	"fmt"
	"strings"

	"github.com/toyz/forge/internal/identifier"
)

// Error represents a validation failure with field context
type Error struct {
	Field   string
	Value   interface{}
	Message string
}

func (e Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Validator represents a validation function
type Validator[T any] func(T) error

// Chain allows chaining multiple validators
type Chain[T any] struct {
	validators []Validator[T]
}

// NewChain creates a new validator chain
func NewChain[T any](validators ...Validator[T]) *Chain[T] {
	return &Chain[T]{validators: validators}
}

// Add adds a validator to the chain
func (c *Chain[T]) Add(validator Validator[T]) *Chain[T] {
	c.validators = append(c.validators, validator)
	return c
}

// Validate runs all validators in the chain, stopping at the first failure
func (c *Chain[T]) Validate(value T) error {
	for _, validator := range c.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty validates that a string is not empty
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if value == "" {
			return Error{
				Field:   field,
				Value:   value,
				Message: "must not be empty",
			}
		}
		return nil
	}
}

// GoIdentifier validates that a string is a valid Go identifier
func GoIdentifier(field string) Validator[string] {
	return func(value string) error {
		if !identifier.IsValid(value) {
			return Error{
				Field:   field,
				Value:   value,
				Message: "must be a valid Go identifier",
			}
		}
		return nil
	}
}

// QualifiedName validates a possibly dot-qualified name: every segment
// must be a valid Go identifier
func QualifiedName(field string) Validator[string] {
	return func(value string) error {
		if value == "" {
			return Error{
				Field:   field,
				Value:   value,
				Message: "must not be empty",
			}
		}
		for _, segment := range strings.Split(value, ".") {
			if !identifier.IsValid(segment) {
				return Error{
					Field:   field,
					Value:   value,
					Message: fmt.Sprintf("segment '%s' is not a valid Go identifier", segment),
				}
			}
		}
		return nil
	}
}
