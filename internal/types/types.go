// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles:
// queries, storage, and the HTTP layer all import types without
// depending on each other.
package types

// Sex values as they appear in the passenger manifest.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// Travel classes recorded in the manifest.
const (
	FirstClass  = 1
	SecondClass = 2
	ThirdClass  = 3
)

// Passenger is one row of the manifest.
//
// Age, Cabin and Embarked are pointers because the source data has gaps:
// a nil Age means "unknown", which is different from a newborn aged 0.
//
// Passengers are read-only once loaded. Nothing in the query layer
// mutates them.
type Passenger struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Age      *float64 `json:"age"`
	Sex      string   `json:"sex"      validate:"oneof=male female"`
	Class    int      `json:"class"    validate:"oneof=1 2 3"`
	Survived bool     `json:"survived"`

	// Columns carried over from the manifest. None of the current
	// queries aggregate on them but they are returned in listings.
	SibSp    int     `json:"sibSp"`
	Parch    int     `json:"parch"`
	Ticket   string  `json:"ticket"`
	Fare     float64 `json:"fare"`
	Cabin    *string `json:"cabin"`
	Embarked *string `json:"embarked"`
}

// PassengerDto is the projection returned to API consumers.
//
// ID and Name are always present. The remaining fields are only filled
// by use cases that expose them (e.g. lookup by ID); the class breakdown
// leaves them zero so omitempty drops them from the JSON.
type PassengerDto struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Age      *float64 `json:"age,omitempty"`
	Sex      string   `json:"sex,omitempty"`
	Class    int      `json:"class,omitempty"`
	Survived *bool    `json:"survived,omitempty"`
}

// ClassBreakdown partitions passengers by travel class.
// Each slice is non-nil so it encodes to [] rather than null.
type ClassBreakdown struct {
	FirstClass  []PassengerDto `json:"firstClass"`
	SecondClass []PassengerDto `json:"secondClass"`
	ThirdClass  []PassengerDto `json:"thirdClass"`
}

// FinalClassBreakdown is the response envelope of the class breakdown query.
type FinalClassBreakdown struct {
	ClassBreakdown ClassBreakdown `json:"classBreakdown"`
}

// SexRates holds one percentage (0-100) per sex.
type SexRates struct {
	Male   float64 `json:"male"`
	Female float64 `json:"female"`
}

// SurvivalRates splits SexRates by outcome.
type SurvivalRates struct {
	Survived SexRates `json:"survived"`
	Perished SexRates `json:"perished"`
}

// SurvivalsResult is the response envelope of the survival rate query.
type SurvivalsResult struct {
	SurvivalRates SurvivalRates `json:"survivalRates"`
}
