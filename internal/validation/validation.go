// Package validation checks query structs against their validate:"..."
// tags and reports every failing field.
package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Failure describes one field that did not pass validation.
type Failure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f Failure) String() string {
	return f.Field + ": " + f.Message
}

// Validator checks a query. An empty result means the query is valid;
// the error is reserved for the check itself failing (e.g. a cancelled
// context).
type Validator[Q any] interface {
	Validate(ctx context.Context, q Q) ([]Failure, error)
}

// validate caches struct metadata across calls and is safe for
// concurrent use, so one instance serves every StructValidator.
var validate = validator.New(validator.WithRequiredStructEnabled())

// StructValidator validates Q using go-playground/validator tags.
type StructValidator[Q any] struct{}

// New returns a tag-driven validator for Q.
func New[Q any]() StructValidator[Q] {
	return StructValidator[Q]{}
}

// Validate implements Validator.
func (StructValidator[Q]) Validate(ctx context.Context, q Q) ([]Failure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	err := validate.StructCtx(ctx, q)
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validate %T: %w", q, err)
	}

	failures := make([]Failure, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		failures = append(failures, Failure{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return failures, nil
}

// message turns a FieldError into a sentence a client can act on.
func message(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be %s.", fe.Field(), choices(strings.Fields(fe.Param())))
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}

// choices renders ["a" "b" "c"] as "a, b, or c" and ["a" "b"] as "a or b".
func choices(opts []string) string {
	switch len(opts) {
	case 0:
		return ""
	case 1:
		return opts[0]
	case 2:
		return opts[0] + " or " + opts[1]
	default:
		return strings.Join(opts[:len(opts)-1], ", ") + ", or " + opts[len(opts)-1]
	}
}
