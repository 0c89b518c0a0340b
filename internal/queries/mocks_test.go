package queries

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/aanand-mishra/titanic-api/internal/types"
	"github.com/aanand-mishra/titanic-api/internal/validation"
)

// mockRepo satisfies every read interface the handlers depend on.
type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetAllPassengers(ctx context.Context) ([]types.Passenger, error) {
	args := m.Called(ctx)
	passengers, _ := args.Get(0).([]types.Passenger)
	return passengers, args.Error(1)
}

func (m *mockRepo) GetPassengers(ctx context.Context, survived *bool) ([]types.Passenger, error) {
	args := m.Called(ctx, survived)
	passengers, _ := args.Get(0).([]types.Passenger)
	return passengers, args.Error(1)
}

func (m *mockRepo) GetPassengerByID(ctx context.Context, id int64) (types.Passenger, bool, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(types.Passenger)
	return p, args.Bool(1), args.Error(2)
}

func (m *mockRepo) GetTotalMales(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockRepo) GetTotalFemales(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockValidator[Q any] struct {
	mock.Mock
}

func (m *mockValidator[Q]) Validate(ctx context.Context, q Q) ([]validation.Failure, error) {
	args := m.Called(ctx, q)
	failures, _ := args.Get(0).([]validation.Failure)
	return failures, args.Error(1)
}

type ctxKey struct{}

// tracedCtx returns a context carrying a marker so tests can check that
// handlers hand the caller's context (or one derived from it) downstream.
func tracedCtx() context.Context {
	return context.WithValue(context.Background(), ctxKey{}, "trace")
}

func isTraced(ctx context.Context) bool {
	return ctx.Value(ctxKey{}) == "trace"
}

func ptr[T any](v T) *T {
	return &v
}
