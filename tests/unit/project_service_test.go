package unit_test

import (
	"context"
	"errors"
	"testing"

	"buildease/internal/domain"
	"buildease/internal/service/project"
	"buildease/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProjectService(repo *mocks.ProjectRepository, notifSvc *mocks.NotificationService) project.Service {
	return project.NewService(repo, nil, notifSvc) // Redis nil
}

func TestProjectService_Create(t *testing.T) {
	mockRepo := new(mocks.ProjectRepository)
	mockNotifSvc := new(mocks.NotificationService)
	svc := newProjectService(mockRepo, mockNotifSvc)

	ctx := context.Background()
	customerID := uuid.New()

	t.Run("Seeds five milestones in phase order", func(t *testing.T) {
		input := domain.CreateProjectInput{
			Title:    "Alex's Villa",
			Budget:   "₹30 Lakhs",
			Location: "Bangalore",
		}

		mockRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Project) bool {
			return p.CustomerID == customerID && p.Status == domain.StatusOpen && p.Progress == 0
		}), mock.MatchedBy(func(ms []domain.Milestone) bool {
			if len(ms) != 5 {
				return false
			}
			for i, m := range ms {
				if m.Name != domain.SeededMilestoneNames[i] || m.Status != domain.MilestoneUpcoming {
					return false
				}
			}
			return true
		})).Return(nil).Once()

		created, err := svc.Create(ctx, customerID, input)

		assert.NoError(t, err)
		assert.Len(t, created.Milestones, 5)
		assert.Equal(t, "Foundation", created.Milestones[0].Name)
		assert.Equal(t, "Finishing", created.Milestones[4].Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Defaults type and skills", func(t *testing.T) {
		input := domain.CreateProjectInput{
			Title:    "Bare minimum",
			Budget:   "₹5 Lakhs",
			Location: "Delhi",
		}

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Project"), mock.Anything).Return(nil).Once()

		created, err := svc.Create(ctx, customerID, input)

		assert.NoError(t, err)
		assert.Equal(t, domain.TypeNewConstruction, created.Type)
		assert.NotNil(t, created.Skills)
		assert.Empty(t, created.Skills)
	})
}

func TestProjectService_ListMine(t *testing.T) {
	ctx := context.Background()
	callerID := uuid.New()

	t.Run("Customer sees owned projects", func(t *testing.T) {
		mockRepo := new(mocks.ProjectRepository)
		svc := newProjectService(mockRepo, new(mocks.NotificationService))

		mockRepo.On("ListByCustomer", ctx, callerID).Return([]domain.Project{{Title: "Mine"}}, nil).Once()

		projects, err := svc.ListMine(ctx, callerID, "customer")

		assert.NoError(t, err)
		assert.Len(t, projects, 1)
		mockRepo.AssertNotCalled(t, "ListByContractor", mock.Anything, mock.Anything)
	})

	t.Run("Contractor sees assigned projects only", func(t *testing.T) {
		mockRepo := new(mocks.ProjectRepository)
		svc := newProjectService(mockRepo, new(mocks.NotificationService))

		mockRepo.On("ListByContractor", ctx, callerID).Return([]domain.Project{}, nil).Once()

		projects, err := svc.ListMine(ctx, callerID, "contractor")

		assert.NoError(t, err)
		assert.Empty(t, projects)
		mockRepo.AssertNotCalled(t, "ListByCustomer", mock.Anything, mock.Anything)
	})
}

func TestProjectService_SubmitBid(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	customerID := uuid.New()

	companyName := "BuildRight Constructions"
	contractor := &domain.User{
		ID:          uuid.New(),
		Name:        "Ravi Kumar",
		Role:        "contractor",
		CompanyName: &companyName,
	}

	existing := &domain.Project{
		ID:         projectID,
		Title:      "Alex's Villa",
		Status:     domain.StatusOpen,
		CustomerID: customerID,
	}

	input := domain.SubmitBidInput{
		Amount:   "₹24 Lakhs",
		Timeline: "6 months",
		Message:  "We can start next week.",
	}

	t.Run("Appends bid and notifies customer", func(t *testing.T) {
		mockRepo := new(mocks.ProjectRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := newProjectService(mockRepo, mockNotifSvc)

		mockRepo.On("GetByID", ctx, projectID).Return(existing, nil).Once()
		mockRepo.On("AddBid", ctx, mock.MatchedBy(func(b *domain.Bid) bool {
			return b.ProjectID == projectID && b.ContractorID == contractor.ID && b.Amount == "₹24 Lakhs"
		})).Return(nil).Once()
		mockNotifSvc.On("NotifyBidPlaced", ctx, existing, contractor, "₹24 Lakhs").Return(nil).Once()

		bid, err := svc.SubmitBid(ctx, projectID, contractor, input)

		assert.NoError(t, err)
		assert.NotNil(t, bid)
		assert.Equal(t, "6 months", bid.Timeline)
		mockRepo.AssertExpectations(t)
		mockNotifSvc.AssertExpectations(t)
	})

	t.Run("Bid survives notification failure", func(t *testing.T) {
		mockRepo := new(mocks.ProjectRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := newProjectService(mockRepo, mockNotifSvc)

		mockRepo.On("GetByID", ctx, projectID).Return(existing, nil).Once()
		mockRepo.On("AddBid", ctx, mock.AnythingOfType("*domain.Bid")).Return(nil).Once()
		mockNotifSvc.On("NotifyBidPlaced", ctx, existing, contractor, "₹24 Lakhs").
			Return(errors.New("notification store down")).Once()

		bid, err := svc.SubmitBid(ctx, projectID, contractor, input)

		assert.NoError(t, err)
		assert.NotNil(t, bid)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown project", func(t *testing.T) {
		mockRepo := new(mocks.ProjectRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := newProjectService(mockRepo, mockNotifSvc)

		mockRepo.On("GetByID", ctx, projectID).Return(nil, nil).Once()

		bid, err := svc.SubmitBid(ctx, projectID, contractor, input)

		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
		assert.Nil(t, bid)
		mockRepo.AssertNotCalled(t, "AddBid", mock.Anything, mock.Anything)
	})

	t.Run("Concurrent bids are all retained", func(t *testing.T) {
		mockRepo := new(mocks.ProjectRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := newProjectService(mockRepo, mockNotifSvc)

		mockRepo.On("GetByID", ctx, projectID).Return(existing, nil).Times(3)
		mockRepo.On("AddBid", ctx, mock.AnythingOfType("*domain.Bid")).Return(nil).Times(3)
		mockNotifSvc.On("NotifyBidPlaced", ctx, existing, mock.AnythingOfType("*domain.User"), mock.AnythingOfType("string")).Return(nil).Times(3)

		for i := 0; i < 3; i++ {
			_, err := svc.SubmitBid(ctx, projectID, &domain.User{ID: uuid.New(), Name: "Bidder"}, domain.SubmitBidInput{Amount: "₹20 Lakhs"})
			assert.NoError(t, err)
		}

		mockRepo.AssertExpectations(t)
	})
}

func TestProjectService_UpdateProgress(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()
	customerID := uuid.New()

	existing := &domain.Project{
		ID:         projectID,
		Title:      "Alex's Villa",
		Status:     domain.StatusInProgress,
		CustomerID: customerID,
	}

	expectReload := func(mockRepo *mocks.ProjectRepository) {
		mockRepo.On("ListMilestones", ctx, projectID).Return([]domain.Milestone{}, nil)
		mockRepo.On("ListUpdates", ctx, projectID).Return([]domain.ProjectUpdate{}, nil)
		mockRepo.On("ListBids", ctx, projectID).Return([]domain.Bid{}, nil)
	}

	t.Run("Sparse patch touches only provided fields", func(t *testing.T) {
		mockRepo := new(mocks.ProjectRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := newProjectService(mockRepo, mockNotifSvc)

		progress := 45
		patch := domain.ProgressPatch{Progress: &progress}

		mockRepo.On("GetByID", ctx, projectID).Return(existing, nil)
		mockRepo.On("ApplyProgress", ctx, projectID, patch).Return(nil).Once()
		expectReload(mockRepo)
		mockNotifSvc.On("NotifyProgressUpdated", ctx, existing, &progress).Return(nil).Once()

		updated, err := svc.UpdateProgress(ctx, projectID, patch)

		assert.NoError(t, err)
		assert.NotNil(t, updated)
		mockRepo.AssertNotCalled(t, "AppendUpdate", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
		mockNotifSvc.AssertExpectations(t)
	})

	t.Run("Update text appends one log entry", func(t *testing.T) {
		mockRepo := new(mocks.ProjectRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := newProjectService(mockRepo, mockNotifSvc)

		note := "Roofing started today."
		patch := domain.ProgressPatch{Update: &note}

		mockRepo.On("GetByID", ctx, projectID).Return(existing, nil)
		mockRepo.On("ApplyProgress", ctx, projectID, patch).Return(nil).Once()
		mockRepo.On("AppendUpdate", ctx, mock.MatchedBy(func(u *domain.ProjectUpdate) bool {
			return u.ProjectID == projectID && u.Text == note
		})).Return(nil).Once()
		expectReload(mockRepo)
		mockNotifSvc.On("NotifyProgressUpdated", ctx, existing, (*int)(nil)).Return(nil).Once()

		_, err := svc.UpdateProgress(ctx, projectID, patch)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockNotifSvc.AssertExpectations(t)
	})

	t.Run("No customer means no notification", func(t *testing.T) {
		mockRepo := new(mocks.ProjectRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := newProjectService(mockRepo, mockNotifSvc)

		orphan := &domain.Project{ID: projectID, Title: "Orphan"}
		progress := 10
		patch := domain.ProgressPatch{Progress: &progress}

		mockRepo.On("GetByID", ctx, projectID).Return(orphan, nil)
		mockRepo.On("ApplyProgress", ctx, projectID, patch).Return(nil).Once()
		expectReload(mockRepo)

		_, err := svc.UpdateProgress(ctx, projectID, patch)

		assert.NoError(t, err)
		mockNotifSvc.AssertNotCalled(t, "NotifyProgressUpdated", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown project", func(t *testing.T) {
		mockRepo := new(mocks.ProjectRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := newProjectService(mockRepo, mockNotifSvc)

		mockRepo.On("GetByID", ctx, projectID).Return(nil, nil).Once()

		updated, err := svc.UpdateProgress(ctx, projectID, domain.ProgressPatch{})

		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
		assert.Nil(t, updated)
		mockRepo.AssertNotCalled(t, "ApplyProgress", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProjectService_GetByID(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	t.Run("Composes milestones, updates and bids", func(t *testing.T) {
		mockRepo := new(mocks.ProjectRepository)
		svc := newProjectService(mockRepo, new(mocks.NotificationService))

		mockRepo.On("GetByID", ctx, projectID).Return(&domain.Project{ID: projectID}, nil).Once()
		mockRepo.On("ListMilestones", ctx, projectID).Return(domain.SeedMilestones(projectID), nil).Once()
		mockRepo.On("ListUpdates", ctx, projectID).Return([]domain.ProjectUpdate{{Text: "Started"}}, nil).Once()
		mockRepo.On("ListBids", ctx, projectID).Return([]domain.Bid{{Amount: "₹24 Lakhs"}, {Amount: "₹26 Lakhs"}}, nil).Once()

		p, err := svc.GetByID(ctx, projectID)

		assert.NoError(t, err)
		assert.Len(t, p.Milestones, 5)
		assert.Len(t, p.Updates, 1)
		assert.Len(t, p.Bids, 2)
	})

	t.Run("Unknown project", func(t *testing.T) {
		mockRepo := new(mocks.ProjectRepository)
		svc := newProjectService(mockRepo, new(mocks.NotificationService))

		mockRepo.On("GetByID", ctx, projectID).Return(nil, nil).Once()

		p, err := svc.GetByID(ctx, projectID)

		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
		assert.Nil(t, p)
	})
}
