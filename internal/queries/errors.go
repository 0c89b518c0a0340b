package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aanand-mishra/titanic-api/internal/validation"
)

// Sentinels for classifying handler errors with errors.Is without
// depending on the concrete types.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// ValidationError is returned when a query fails validation. It is
// raised before the repository is touched.
type ValidationError struct {
	Failures []validation.Failure
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, f.String())
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError is returned when a lookup by id finds nothing.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Passenger with ID %d was not found.", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// validateQuery runs v and turns a non-empty failure list into a
// *ValidationError.
func validateQuery[Q any](ctx context.Context, v validation.Validator[Q], q Q) error {
	failures, err := v.Validate(ctx, q)
	if err != nil {
		return err
	}
	if len(failures) > 0 {
		return &ValidationError{Failures: failures}
	}
	return nil
}
