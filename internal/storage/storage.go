// Package storage defines the repository contracts the query layer
// depends on.
//
// Handlers ask for the smallest interface that covers what they read:
// the survival handler only needs counts and the full list, the lookup
// handlers only need filtered and single-row reads. Any backend that
// implements Storage satisfies all of them, and tests can substitute a
// mock for just the piece they exercise.
package storage

import (
	"context"

	"github.com/aanand-mishra/titanic-api/internal/types"
)

// PassengerLister returns the whole manifest.
type PassengerLister interface {
	// GetAllPassengers returns every passenger in storage order.
	// Returns an empty slice (not nil) when there are none.
	GetAllPassengers(ctx context.Context) ([]types.Passenger, error)
}

// PassengerFinder serves filtered and single-row reads.
type PassengerFinder interface {
	// GetPassengers returns passengers whose survival status matches
	// survived. A nil survived means no filter.
	GetPassengers(ctx context.Context, survived *bool) ([]types.Passenger, error)

	// GetPassengerByID returns the passenger with the given id.
	// ok is false, with a nil error, when no such passenger exists.
	GetPassengerByID(ctx context.Context, id int64) (p types.Passenger, ok bool, err error)
}

// SurvivalCounter provides the inputs of the survival rate computation.
type SurvivalCounter interface {
	PassengerLister

	GetTotalMales(ctx context.Context) (int, error)
	GetTotalFemales(ctx context.Context) (int, error)
}

// Storage is the full backend contract.
type Storage interface {
	PassengerFinder
	SurvivalCounter

	// ImportPassengers upserts passengers by id and reports how many
	// rows were written.
	ImportPassengers(ctx context.Context, passengers []types.Passenger) (int64, error)

	// CountPassengers returns the number of stored passengers.
	CountPassengers(ctx context.Context) (int, error)

	Close() error
}
