package commands_test

import (
	"context"
	"time"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *checkout.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *checkout.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*checkout.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, s *checkout.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockSessionUoW struct{ mock.Mock }

func (m *MockSessionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionUoW) SessionRepository() ports.SessionRepository {
	args := m.Called()
	return args.Get(0).(ports.SessionRepository)
}

type MockSessionUoWFactory struct{ mock.Mock }

func (m *MockSessionUoWFactory) Create() commands.SessionUoW {
	args := m.Called()
	return args.Get(0).(commands.SessionUoW)
}

type MockOrderSink struct{ mock.Mock }

func (m *MockOrderSink) Submit(ctx context.Context, order checkout.FinalizedOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func newMocks() (*MockSessionRepository, *MockSessionUoW, *MockSessionUoWFactory) {
	repo := new(MockSessionRepository)
	uow := new(MockSessionUoW)
	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()
	return repo, uow, factory
}

func completeDraft() checkout.OrderDraft {
	return checkout.OrderDraft{
		Name:           "Kiss Anna",
		Email:          "anna@example.hu",
		Address:        "Budapest, Váci út 1-3.",
		ShippingMethod: checkout.Pickup,
		PickupPoint:    "Szeged - Árkád",
		PaymentMethod:  checkout.Card,
	}
}

func restoredSession(step checkout.Step, draft checkout.OrderDraft) *checkout.Session {
	session, err := checkout.RestoreSession(checkout.Snapshot{
		ID:        kernel.NewUUID(),
		Draft:     draft,
		Step:      step,
		Version:   1,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}, checkout.DefaultPickupPoints)
	if err != nil {
		panic(err)
	}
	return session
}
