package worker

import (
	"context"

	"github.com/google/uuid"

	"buildease/internal/domain"
	"buildease/internal/repository"
)

type Service interface {
	Create(ctx context.Context, contractorID uuid.UUID, input domain.CreateWorkerInput) (*domain.Worker, error)
	List(ctx context.Context, contractorID uuid.UUID) ([]domain.Worker, error)
	Update(ctx context.Context, id, contractorID uuid.UUID, patch domain.WorkerPatch) (*domain.Worker, error)
	Delete(ctx context.Context, id, contractorID uuid.UUID) error
}

type service struct {
	workerRepo repository.WorkerRepository
}

func NewService(workerRepo repository.WorkerRepository) Service {
	return &service{workerRepo: workerRepo}
}

func (s *service) Create(ctx context.Context, contractorID uuid.UUID, input domain.CreateWorkerInput) (*domain.Worker, error) {
	worker := &domain.Worker{
		ID:           uuid.New(),
		ContractorID: contractorID,
		Name:         input.Name,
		Role:         input.Role,
		Status:       domain.WorkerAvailable,
		Phone:        input.Phone,
		DailyWage:    input.DailyWage,
	}

	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

func (s *service) List(ctx context.Context, contractorID uuid.UUID) ([]domain.Worker, error) {
	return s.workerRepo.ListByContractor(ctx, contractorID)
}

// Update applies the sparse patch. A worker belonging to another contractor is
// reported as absent.
func (s *service) Update(ctx context.Context, id, contractorID uuid.UUID, patch domain.WorkerPatch) (*domain.Worker, error) {
	worker, err := s.workerRepo.GetForContractor(ctx, id, contractorID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrWorkerNotFound
	}

	if patch.Name != nil {
		worker.Name = *patch.Name
	}
	if patch.Role != nil {
		worker.Role = *patch.Role
	}
	if patch.Status != nil {
		worker.Status = *patch.Status
	}
	if patch.AssignedProjectID.Set {
		worker.AssignedProjectID = patch.AssignedProjectID.Value
	}

	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

func (s *service) Delete(ctx context.Context, id, contractorID uuid.UUID) error {
	deleted, err := s.workerRepo.Delete(ctx, id, contractorID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrWorkerNotFound
	}
	return nil
}
