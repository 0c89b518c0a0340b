package queries

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/titanic-api/internal/types"
)

func TestGetSurvivals_ReturnsSurvivalRates(t *testing.T) {
	repo := &mockRepo{}
	h := NewGetSurvivalsHandler(repo)
	totalMales, totalFemales := 100, 150

	repo.On("GetTotalMales", mock.Anything).Return(totalMales, nil).Once()
	repo.On("GetTotalFemales", mock.Anything).Return(totalFemales, nil).Once()
	repo.On("GetAllPassengers", mock.Anything).Return([]types.Passenger{
		{ID: 1, Sex: types.SexMale, Survived: true},
		{ID: 2, Sex: types.SexMale, Survived: false},
		{ID: 3, Sex: types.SexFemale, Survived: true},
		{ID: 4, Sex: types.SexFemale, Survived: false},
	}, nil).Once()

	got, err := h.Handle(context.Background(), GetSurvivalsQuery{})
	require.NoError(t, err)

	rates := got.SurvivalRates
	assert.InDelta(t, 1.0, rates.Survived.Male, 1e-9)
	assert.InDelta(t, 1.0, rates.Perished.Male, 1e-9)
	assert.InDelta(t, 100.0/150.0, rates.Survived.Female, 1e-9)
	assert.InDelta(t, 100.0/150.0, rates.Perished.Female, 1e-9)

	repo.AssertNumberOfCalls(t, "GetTotalMales", 1)
	repo.AssertNumberOfCalls(t, "GetTotalFemales", 1)
	repo.AssertNumberOfCalls(t, "GetAllPassengers", 1)
}

func TestGetSurvivals_NoData_ReturnsZeroRates(t *testing.T) {
	repo := &mockRepo{}
	h := NewGetSurvivalsHandler(repo)

	repo.On("GetTotalMales", mock.Anything).Return(0, nil)
	repo.On("GetTotalFemales", mock.Anything).Return(0, nil)
	repo.On("GetAllPassengers", mock.Anything).Return([]types.Passenger{}, nil)

	got, err := h.Handle(context.Background(), GetSurvivalsQuery{})
	require.NoError(t, err)

	assert.Equal(t, types.SurvivalRates{}, got.SurvivalRates)
	repo.AssertExpectations(t)
}

func TestGetSurvivals_FetchFailureAbortsAndPropagates(t *testing.T) {
	repo := &mockRepo{}
	h := NewGetSurvivalsHandler(repo)
	storageErr := errors.New("disk I/O error")

	repo.On("GetTotalMales", mock.Anything).Return(0, storageErr)
	repo.On("GetTotalFemales", mock.Anything).Return(150, nil).Maybe()
	repo.On("GetAllPassengers", mock.Anything).Return([]types.Passenger{}, nil).Maybe()

	got, err := h.Handle(context.Background(), GetSurvivalsQuery{})
	assert.Same(t, storageErr, err)
	assert.Equal(t, types.SurvivalsResult{}, got)
}

func TestGetSurvivals_PassesDerivedContextToEveryFetch(t *testing.T) {
	repo := &mockRepo{}
	h := NewGetSurvivalsHandler(repo)
	traced := mock.MatchedBy(isTraced)

	repo.On("GetTotalMales", traced).Return(1, nil).Once()
	repo.On("GetTotalFemales", traced).Return(1, nil).Once()
	repo.On("GetAllPassengers", traced).Return([]types.Passenger{}, nil).Once()

	_, err := h.Handle(tracedCtx(), GetSurvivalsQuery{})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
