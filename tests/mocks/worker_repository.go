package mocks

import (
	"context"

	"buildease/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type WorkerRepository struct {
	mock.Mock
}

func (m *WorkerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *WorkerRepository) GetForContractor(ctx context.Context, id, contractorID uuid.UUID) (*domain.Worker, error) {
	args := m.Called(ctx, id, contractorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *WorkerRepository) ListByContractor(ctx context.Context, contractorID uuid.UUID) ([]domain.Worker, error) {
	args := m.Called(ctx, contractorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *WorkerRepository) Update(ctx context.Context, worker *domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *WorkerRepository) Delete(ctx context.Context, id, contractorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, contractorID)
	return args.Bool(0), args.Error(1)
}
