package queries

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aanand-mishra/titanic-api/internal/storage"
	"github.com/aanand-mishra/titanic-api/internal/types"
)

// GetSurvivalsHandler computes survival and casualty rates by sex.
type GetSurvivalsHandler struct {
	repo storage.SurvivalCounter
}

func NewGetSurvivalsHandler(repo storage.SurvivalCounter) *GetSurvivalsHandler {
	return &GetSurvivalsHandler{repo: repo}
}

// Handle issues the three independent reads in parallel and joins them
// before computing. The first failing read cancels the others and its
// error is returned as is.
func (h *GetSurvivalsHandler) Handle(ctx context.Context, _ GetSurvivalsQuery) (types.SurvivalsResult, error) {
	var (
		totalMales   int
		totalFemales int
		passengers   []types.Passenger
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalMales, err = h.repo.GetTotalMales(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalFemales, err = h.repo.GetTotalFemales(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		passengers, err = h.repo.GetAllPassengers(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return types.SurvivalsResult{}, err
	}

	return types.SurvivalsResult{
		SurvivalRates: ComputeSurvivalRates(passengers, totalMales, totalFemales),
	}, nil
}
