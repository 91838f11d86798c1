package unit_test

import (
	"context"
	"testing"

	"buildease/internal/domain"
	"buildease/internal/service/worker"
	"buildease/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorkerService_Create(t *testing.T) {
	mockRepo := new(mocks.WorkerRepository)
	svc := worker.NewService(mockRepo)

	ctx := context.Background()
	contractorID := uuid.New()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(w *domain.Worker) bool {
		return w.ContractorID == contractorID && w.Status == domain.WorkerAvailable
	})).Return(nil).Once()

	created, err := svc.Create(ctx, contractorID, domain.CreateWorkerInput{
		Name:      "Suresh",
		Role:      domain.WorkerMason,
		DailyWage: 800,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.WorkerAvailable, created.Status)
	mockRepo.AssertExpectations(t)
}

func TestWorkerService_Update(t *testing.T) {
	ctx := context.Background()
	contractorID := uuid.New()
	otherContractorID := uuid.New()
	workerID := uuid.New()

	existing := func() *domain.Worker {
		return &domain.Worker{
			ID:           workerID,
			ContractorID: contractorID,
			Name:         "Suresh",
			Role:         domain.WorkerMason,
			Status:       domain.WorkerAvailable,
		}
	}

	t.Run("Patch touches only provided fields", func(t *testing.T) {
		mockRepo := new(mocks.WorkerRepository)
		svc := worker.NewService(mockRepo)

		status := domain.WorkerOnLeave
		mockRepo.On("GetForContractor", ctx, workerID, contractorID).Return(existing(), nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(w *domain.Worker) bool {
			return w.Status == domain.WorkerOnLeave && w.Name == "Suresh" && w.Role == domain.WorkerMason
		})).Return(nil).Once()

		updated, err := svc.Update(ctx, workerID, contractorID, domain.WorkerPatch{Status: &status})

		assert.NoError(t, err)
		assert.Equal(t, domain.WorkerOnLeave, updated.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Explicit null unassigns the project", func(t *testing.T) {
		mockRepo := new(mocks.WorkerRepository)
		svc := worker.NewService(mockRepo)

		projectID := uuid.New()
		assigned := existing()
		assigned.Status = domain.WorkerAssigned
		assigned.AssignedProjectID = &projectID

		mockRepo.On("GetForContractor", ctx, workerID, contractorID).Return(assigned, nil).Once()
		mockRepo.On("Update", ctx, mock.MatchedBy(func(w *domain.Worker) bool {
			return w.AssignedProjectID == nil
		})).Return(nil).Once()

		updated, err := svc.Update(ctx, workerID, contractorID, domain.WorkerPatch{
			AssignedProjectID: domain.NullableUUID{Set: true},
		})

		assert.NoError(t, err)
		assert.Nil(t, updated.AssignedProjectID)
	})

	t.Run("Another contractor's worker reads as absent", func(t *testing.T) {
		mockRepo := new(mocks.WorkerRepository)
		svc := worker.NewService(mockRepo)

		mockRepo.On("GetForContractor", ctx, workerID, otherContractorID).Return(nil, nil).Once()

		updated, err := svc.Update(ctx, workerID, otherContractorID, domain.WorkerPatch{})

		assert.ErrorIs(t, err, domain.ErrWorkerNotFound)
		assert.Nil(t, updated)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestWorkerService_Delete(t *testing.T) {
	ctx := context.Background()
	contractorID := uuid.New()
	workerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.WorkerRepository)
		svc := worker.NewService(mockRepo)

		mockRepo.On("Delete", ctx, workerID, contractorID).Return(true, nil).Once()

		assert.NoError(t, svc.Delete(ctx, workerID, contractorID))
	})

	t.Run("Nothing deleted", func(t *testing.T) {
		mockRepo := new(mocks.WorkerRepository)
		svc := worker.NewService(mockRepo)

		mockRepo.On("Delete", ctx, workerID, contractorID).Return(false, nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, workerID, contractorID), domain.ErrWorkerNotFound)
	})
}
