package queries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/titanic-api/internal/types"
)

func TestBreakdownByClass_EveryPassengerLandsInExactlyOneBucket(t *testing.T) {
	var passengers []types.Passenger
	for i := 1; i <= 30; i++ {
		passengers = append(passengers, types.Passenger{ID: int64(i), Name: "p", Class: i%3 + 1})
	}

	got := BreakdownByClass(passengers)

	total := len(got.FirstClass) + len(got.SecondClass) + len(got.ThirdClass)
	assert.Equal(t, len(passengers), total)

	seen := map[int64]int{}
	for class, bucket := range map[int][]types.PassengerDto{
		1: got.FirstClass, 2: got.SecondClass, 3: got.ThirdClass,
	} {
		for _, dto := range bucket {
			seen[dto.ID]++
			assert.Equal(t, class, int(dto.ID)%3+1, "passenger %d in wrong bucket", dto.ID)
		}
	}
	assert.Len(t, seen, len(passengers))
	for id, n := range seen {
		assert.Equal(t, 1, n, "passenger %d seen %d times", id, n)
	}
}

func TestBreakdownByClass_PreservesInputOrderAndProjectsIDName(t *testing.T) {
	got := BreakdownByClass([]types.Passenger{
		{ID: 9, Name: "C", Class: 1, Sex: types.SexFemale, Age: ptr(40.0)},
		{ID: 2, Name: "A", Class: 1},
		{ID: 5, Name: "B", Class: 1},
	})

	assert.Equal(t, []types.PassengerDto{
		{ID: 9, Name: "C"},
		{ID: 2, Name: "A"},
		{ID: 5, Name: "B"},
	}, got.FirstClass)
}

func TestBreakdownByClass_SkipsUnknownClass(t *testing.T) {
	got := BreakdownByClass([]types.Passenger{{ID: 1, Class: 0}, {ID: 2, Class: 4}})

	assert.Empty(t, got.FirstClass)
	assert.Empty(t, got.SecondClass)
	assert.Empty(t, got.ThirdClass)
}

func TestOrderByAge_UnknownAgesLastAndStable(t *testing.T) {
	in := []types.Passenger{
		{ID: 1, Age: nil},
		{ID: 2, Age: ptr(30.0)},
		{ID: 3, Age: ptr(2.0)},
		{ID: 4, Age: nil},
		{ID: 5, Age: ptr(30.0)},
		{ID: 6, Age: ptr(0.42)},
	}

	got := OrderByAge(in)

	ids := make([]int64, len(got))
	for i, p := range got {
		ids[i] = p.ID
	}
	assert.Equal(t, []int64{6, 3, 2, 5, 1, 4}, ids)

	// input is left untouched
	assert.Equal(t, int64(1), in[0].ID)
}

func TestOrderByAge_NilInputReturnsEmpty(t *testing.T) {
	got := OrderByAge(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestComputeSurvivalRates_ZeroTotalsAreZeroNotNaN(t *testing.T) {
	// Survivors present but totals missing must still give 0.
	rates := ComputeSurvivalRates([]types.Passenger{
		{Sex: types.SexMale, Survived: true},
		{Sex: types.SexFemale, Survived: false},
	}, 0, 0)

	for _, v := range []float64{rates.Survived.Male, rates.Survived.Female, rates.Perished.Male, rates.Perished.Female} {
		assert.False(t, math.IsNaN(v))
		assert.Zero(t, v)
	}
}

func TestComputeSurvivalRates_OnlyOneSexPopulated(t *testing.T) {
	rates := ComputeSurvivalRates([]types.Passenger{
		{Sex: types.SexFemale, Survived: true},
		{Sex: types.SexFemale, Survived: true},
		{Sex: types.SexFemale, Survived: false},
		{Sex: types.SexFemale, Survived: true},
	}, 0, 4)

	assert.InDelta(t, 75.0, rates.Survived.Female, 1e-9)
	assert.InDelta(t, 25.0, rates.Perished.Female, 1e-9)
	assert.Zero(t, rates.Survived.Male)
	assert.Zero(t, rates.Perished.Male)
}
