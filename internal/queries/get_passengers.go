package queries

import (
	"context"
	"log/slog"

	"github.com/aanand-mishra/titanic-api/internal/storage"
	"github.com/aanand-mishra/titanic-api/internal/types"
	"github.com/aanand-mishra/titanic-api/internal/validation"
)

// GetPassengersHandler lists passengers, optionally filtered by
// survival status.
type GetPassengersHandler struct {
	repo      storage.PassengerFinder
	validator validation.Validator[GetPassengersQuery]
	log       *slog.Logger
}

func NewGetPassengersHandler(
	repo storage.PassengerFinder,
	validator validation.Validator[GetPassengersQuery],
	log *slog.Logger,
) *GetPassengersHandler {
	return &GetPassengersHandler{
		repo:      repo,
		validator: validator,
		log:       log.With(slog.String("handler", "GetPassengers")),
	}
}

// Handle validates q and returns the matching passengers as stored.
// No match is an empty slice, not an error.
func (h *GetPassengersHandler) Handle(ctx context.Context, q GetPassengersQuery) ([]types.Passenger, error) {
	if err := validateQuery(ctx, h.validator, q); err != nil {
		return nil, err
	}

	passengers, err := h.repo.GetPassengers(ctx, q.SurvivedFilter())
	if err != nil {
		return nil, err
	}
	if passengers == nil {
		passengers = []types.Passenger{}
	}

	h.log.Debug("passengers fetched",
		slog.String("survived", q.Survived),
		slog.Int("count", len(passengers)))
	return passengers, nil
}
