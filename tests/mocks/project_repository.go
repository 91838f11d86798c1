package mocks

import (
	"context"

	"buildease/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, project *domain.Project, milestones []domain.Milestone) error {
	args := m.Called(ctx, project, milestones)
	return args.Error(0)
}

func (m *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *ProjectRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Project, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *ProjectRepository) ListByContractor(ctx context.Context, contractorID uuid.UUID) ([]domain.Project, error) {
	args := m.Called(ctx, contractorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *ProjectRepository) AddBid(ctx context.Context, bid *domain.Bid) error {
	args := m.Called(ctx, bid)
	return args.Error(0)
}

func (m *ProjectRepository) ListBids(ctx context.Context, projectID uuid.UUID) ([]domain.Bid, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bid), args.Error(1)
}

func (m *ProjectRepository) ListMilestones(ctx context.Context, projectID uuid.UUID) ([]domain.Milestone, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Milestone), args.Error(1)
}

func (m *ProjectRepository) ListUpdates(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectUpdate, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectUpdate), args.Error(1)
}

func (m *ProjectRepository) ApplyProgress(ctx context.Context, id uuid.UUID, patch domain.ProgressPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *ProjectRepository) AppendUpdate(ctx context.Context, update *domain.ProjectUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *ProjectRepository) AppendGalleryImage(ctx context.Context, projectID uuid.UUID, url string) error {
	args := m.Called(ctx, projectID, url)
	return args.Error(0)
}
