package queries

import (
	"context"

	"github.com/aanand-mishra/titanic-api/internal/storage"
	"github.com/aanand-mishra/titanic-api/internal/types"
)

// GetByClassHandler groups passengers by travel class.
type GetByClassHandler struct {
	repo storage.PassengerLister
}

func NewGetByClassHandler(repo storage.PassengerLister) *GetByClassHandler {
	return &GetByClassHandler{repo: repo}
}

func (h *GetByClassHandler) Handle(ctx context.Context, _ GetByClassQuery) (types.FinalClassBreakdown, error) {
	passengers, err := h.repo.GetAllPassengers(ctx)
	if err != nil {
		return types.FinalClassBreakdown{}, err
	}
	return types.FinalClassBreakdown{ClassBreakdown: BreakdownByClass(passengers)}, nil
}
