package queries

import (
	"context"
	"log/slog"

	"github.com/aanand-mishra/titanic-api/internal/storage"
	"github.com/aanand-mishra/titanic-api/internal/types"
	"github.com/aanand-mishra/titanic-api/internal/validation"
)

// GetPassengerByIDHandler returns one passenger as a detailed DTO.
type GetPassengerByIDHandler struct {
	repo      storage.PassengerFinder
	validator validation.Validator[GetPassengerByIDQuery]
	log       *slog.Logger
}

func NewGetPassengerByIDHandler(
	repo storage.PassengerFinder,
	validator validation.Validator[GetPassengerByIDQuery],
	log *slog.Logger,
) *GetPassengerByIDHandler {
	return &GetPassengerByIDHandler{
		repo:      repo,
		validator: validator,
		log:       log.With(slog.String("handler", "GetPassengerByID")),
	}
}

// Handle returns *NotFoundError when no passenger has q.ID.
func (h *GetPassengerByIDHandler) Handle(ctx context.Context, q GetPassengerByIDQuery) (types.PassengerDto, error) {
	if err := validateQuery(ctx, h.validator, q); err != nil {
		return types.PassengerDto{}, err
	}

	p, ok, err := h.repo.GetPassengerByID(ctx, q.ID)
	if err != nil {
		return types.PassengerDto{}, err
	}
	if !ok {
		h.log.Debug("passenger not found", slog.Int64("id", q.ID))
		return types.PassengerDto{}, &NotFoundError{ID: q.ID}
	}

	return toDetailDto(p), nil
}
