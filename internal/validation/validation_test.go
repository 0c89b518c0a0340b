package validation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleQuery struct {
	ID       int64  `validate:"required,gt=0"`
	Survived string `validate:"omitempty,oneof=true false null"`
	Sex      string `validate:"omitempty,oneof=male female"`
}

func TestStructValidator_ValidQueryHasNoFailures(t *testing.T) {
	failures, err := New[sampleQuery]().Validate(context.Background(), sampleQuery{ID: 1, Survived: "null"})
	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestStructValidator_ReportsEveryFailingField(t *testing.T) {
	failures, err := New[sampleQuery]().Validate(context.Background(), sampleQuery{
		Survived: "maybe",
		Sex:      "unknown",
	})
	require.NoError(t, err)

	assert.Equal(t, []Failure{
		{Field: "ID", Message: "ID is required."},
		{Field: "Survived", Message: "Survived must be true, false, or null."},
		{Field: "Sex", Message: "Sex must be male or female."},
	}, failures)
}

func TestStructValidator_GreaterThan(t *testing.T) {
	failures, err := New[sampleQuery]().Validate(context.Background(), sampleQuery{ID: -1})
	require.NoError(t, err)
	require.Len(t, failures, 1)
	assert.Equal(t, "ID must be greater than 0.", failures[0].Message)
}

func TestStructValidator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	failures, err := New[sampleQuery]().Validate(ctx, sampleQuery{ID: 1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, failures)
}

func TestChoices(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a or b"},
		{[]string{"1", "2", "3"}, "1, 2, or 3"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, choices(c.in))
	}
}
