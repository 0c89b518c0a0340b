package queries

import (
	"context"
	"log/slog"

	"github.com/aanand-mishra/titanic-api/internal/storage"
	"github.com/aanand-mishra/titanic-api/internal/types"
)

// GetPassengersByAgeHandler lists every passenger youngest first, with
// unknown ages at the end (see OrderByAge).
type GetPassengersByAgeHandler struct {
	repo storage.PassengerLister
	log  *slog.Logger
}

func NewGetPassengersByAgeHandler(repo storage.PassengerLister, log *slog.Logger) *GetPassengersByAgeHandler {
	return &GetPassengersByAgeHandler{
		repo: repo,
		log:  log.With(slog.String("handler", "GetPassengersByAge")),
	}
}

func (h *GetPassengersByAgeHandler) Handle(ctx context.Context, _ GetPassengersByAgeQuery) ([]types.Passenger, error) {
	passengers, err := h.repo.GetAllPassengers(ctx)
	if err != nil {
		return nil, err
	}

	ordered := OrderByAge(passengers)
	h.log.Debug("passengers ordered by age", slog.Int("count", len(ordered)))
	return ordered, nil
}
