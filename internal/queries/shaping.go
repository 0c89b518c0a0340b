package queries

import (
	"cmp"
	"slices"

	"github.com/aanand-mishra/titanic-api/internal/types"
)

// toSummaryDto projects a passenger to the id and name pair used in
// listings such as the class breakdown.
func toSummaryDto(p types.Passenger) types.PassengerDto {
	return types.PassengerDto{ID: p.ID, Name: p.Name}
}

// toDetailDto projects every field the single-passenger lookup exposes.
func toDetailDto(p types.Passenger) types.PassengerDto {
	survived := p.Survived
	dto := types.PassengerDto{
		ID:       p.ID,
		Name:     p.Name,
		Sex:      p.Sex,
		Class:    p.Class,
		Survived: &survived,
	}
	if p.Age != nil {
		age := *p.Age
		dto.Age = &age
	}
	return dto
}

// BreakdownByClass partitions passengers into first, second and third
// class, keeping input order inside each bucket. A class outside 1..3
// has no bucket and is skipped; storage does not admit such rows.
func BreakdownByClass(passengers []types.Passenger) types.ClassBreakdown {
	out := types.ClassBreakdown{
		FirstClass:  []types.PassengerDto{},
		SecondClass: []types.PassengerDto{},
		ThirdClass:  []types.PassengerDto{},
	}
	for _, p := range passengers {
		switch p.Class {
		case types.FirstClass:
			out.FirstClass = append(out.FirstClass, toSummaryDto(p))
		case types.SecondClass:
			out.SecondClass = append(out.SecondClass, toSummaryDto(p))
		case types.ThirdClass:
			out.ThirdClass = append(out.ThirdClass, toSummaryDto(p))
		}
	}
	return out
}

// OrderByAge returns a copy of passengers sorted by ascending age.
// Passengers with no recorded age go last. The sort is stable, so equal
// ages and the unknown-age tail keep their input order.
func OrderByAge(passengers []types.Passenger) []types.Passenger {
	out := slices.Clone(passengers)
	if out == nil {
		out = []types.Passenger{}
	}
	slices.SortStableFunc(out, func(a, b types.Passenger) int {
		switch {
		case a.Age == nil && b.Age == nil:
			return 0
		case a.Age == nil:
			return 1
		case b.Age == nil:
			return -1
		}
		return cmp.Compare(*a.Age, *b.Age)
	})
	return out
}

// ComputeSurvivalRates counts survivors and casualties per sex and
// expresses each as a percentage of that sex's total population.
// Totals come from the repository, not from len(passengers).
func ComputeSurvivalRates(passengers []types.Passenger, totalMales, totalFemales int) types.SurvivalRates {
	var survivedMale, survivedFemale, perishedMale, perishedFemale int
	for _, p := range passengers {
		switch {
		case p.Sex == types.SexMale && p.Survived:
			survivedMale++
		case p.Sex == types.SexMale:
			perishedMale++
		case p.Sex == types.SexFemale && p.Survived:
			survivedFemale++
		case p.Sex == types.SexFemale:
			perishedFemale++
		}
	}

	return types.SurvivalRates{
		Survived: types.SexRates{
			Male:   rate(survivedMale, totalMales),
			Female: rate(survivedFemale, totalFemales),
		},
		Perished: types.SexRates{
			Male:   rate(perishedMale, totalMales),
			Female: rate(perishedFemale, totalFemales),
		},
	}
}

// rate is count/total as a percentage; an empty population is 0%.
func rate(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
