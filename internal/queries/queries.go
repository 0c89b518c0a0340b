// Package queries holds the read side of the application: one query
// type and one handler per question the API answers.
//
// Every handler follows the same shape:
//  1. validate the query (when the query has inputs)
//  2. read from the repository
//  3. shape the records into the response type
//
// Errors from the repository are returned unchanged. Validation and
// not-found outcomes are reported with the typed errors in errors.go.
package queries

import (
	"context"
	"strconv"
)

// Handler executes one query end to end.
type Handler[Q, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// HandlerFunc adapts a plain function to Handler, the same way
// http.HandlerFunc adapts functions to http.Handler.
type HandlerFunc[Q, R any] func(ctx context.Context, q Q) (R, error)

// Handle calls f(ctx, q).
func (f HandlerFunc[Q, R]) Handle(ctx context.Context, q Q) (R, error) {
	return f(ctx, q)
}

// GetPassengersQuery lists passengers, optionally by survival status.
//
// Survived is kept as the raw filter value so it can be validated: ""
// and "null" mean no filter, "true" and "false" filter. Callers with a
// typed value use NewGetPassengersQuery.
type GetPassengersQuery struct {
	Survived string `validate:"omitempty,oneof=true false null"`
}

// NewGetPassengersQuery builds a query from a typed filter; nil means
// no filter.
func NewGetPassengersQuery(survived *bool) GetPassengersQuery {
	if survived == nil {
		return GetPassengersQuery{}
	}
	return GetPassengersQuery{Survived: strconv.FormatBool(*survived)}
}

// SurvivedFilter returns the filter as the repository expects it.
// Only meaningful on a validated query; anything unrecognised is
// treated as no filter.
func (q GetPassengersQuery) SurvivedFilter() *bool {
	switch q.Survived {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// GetPassengerByIDQuery looks up a single passenger.
type GetPassengerByIDQuery struct {
	ID int64 `validate:"required,gt=0"`
}

// GetPassengersByAgeQuery lists passengers youngest first.
type GetPassengersByAgeQuery struct{}

// GetByClassQuery groups passengers by travel class.
type GetByClassQuery struct{}

// GetSurvivalsQuery computes survival rates by sex.
type GetSurvivalsQuery struct{}
