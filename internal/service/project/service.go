package project

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"buildease/internal/domain"
	"buildease/internal/repository"
	"buildease/internal/service/notification"
)

const (
	openListCacheKey = "projects:open"
	openListCacheTTL = time.Minute
)

type Service interface {
	Create(ctx context.Context, customerID uuid.UUID, input domain.CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error)
	ListMine(ctx context.Context, callerID uuid.UUID, role string) ([]domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	SubmitBid(ctx context.Context, projectID uuid.UUID, contractor *domain.User, input domain.SubmitBidInput) (*domain.Bid, error)
	UpdateProgress(ctx context.Context, projectID uuid.UUID, patch domain.ProgressPatch) (*domain.Project, error)
}

type service struct {
	projectRepo repository.ProjectRepository
	redis       *redis.Client
	notifSvc    notification.Service
}

func NewService(projectRepo repository.ProjectRepository, redis *redis.Client, notifSvc notification.Service) Service {
	return &service{
		projectRepo: projectRepo,
		redis:       redis,
		notifSvc:    notifSvc,
	}
}

func (s *service) Create(ctx context.Context, customerID uuid.UUID, input domain.CreateProjectInput) (*domain.Project, error) {
	projectType := input.Type
	if projectType == "" {
		projectType = domain.TypeNewConstruction
	}

	skills := input.Skills
	if skills == nil {
		skills = []string{}
	}

	project := &domain.Project{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Location:    input.Location,
		Type:        projectType,
		Skills:      skills,
		Status:      domain.StatusOpen,
		Progress:    0,
		CustomerID:  customerID,
		TotalBudget: input.TotalBudget,
		Gallery:     []string{},
	}

	milestones := domain.SeedMilestones(project.ID)

	if err := s.projectRepo.Create(ctx, project, milestones); err != nil {
		return nil, err
	}
	project.Milestones = milestones

	s.invalidateOpenList(ctx)

	return project, nil
}

func (s *service) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	cacheable := filter.Status == domain.StatusOpen && filter.Type == ""

	if cacheable && s.redis != nil {
		if cached, err := s.redis.Get(ctx, openListCacheKey).Bytes(); err == nil {
			var projects []domain.Project
			if err := json.Unmarshal(cached, &projects); err == nil {
				return projects, nil
			}
		}
	}

	projects, err := s.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if cacheable && s.redis != nil {
		if data, err := json.Marshal(projects); err == nil {
			_ = s.redis.Set(ctx, openListCacheKey, data, openListCacheTTL).Err()
		}
	}

	return projects, nil
}

// ListMine scopes by ownership for customers and by assignment for
// contractors. A contractor who has only bid on a project does not see it
// here; bids surface on the project detail view instead.
func (s *service) ListMine(ctx context.Context, callerID uuid.UUID, role string) ([]domain.Project, error) {
	if role == string(domain.RoleCustomer) {
		return s.projectRepo.ListByCustomer(ctx, callerID)
	}
	return s.projectRepo.ListByContractor(ctx, callerID)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	if project.Milestones, err = s.projectRepo.ListMilestones(ctx, id); err != nil {
		return nil, err
	}
	if project.Updates, err = s.projectRepo.ListUpdates(ctx, id); err != nil {
		return nil, err
	}
	if project.Bids, err = s.projectRepo.ListBids(ctx, id); err != nil {
		return nil, err
	}

	return project, nil
}

// SubmitBid appends a bid and then alerts the customer. The bid write commits
// first; a notification failure is logged and swallowed, so callers cannot
// tell the two apart. Bidding never assigns the contractor or moves status.
func (s *service) SubmitBid(ctx context.Context, projectID uuid.UUID, contractor *domain.User, input domain.SubmitBidInput) (*domain.Bid, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	bid := &domain.Bid{
		ID:           uuid.New(),
		ProjectID:    projectID,
		ContractorID: contractor.ID,
		Amount:       input.Amount,
		Timeline:     input.Timeline,
		Message:      input.Message,
	}

	if err := s.projectRepo.AddBid(ctx, bid); err != nil {
		return nil, err
	}

	s.invalidateOpenList(ctx)

	if err := s.notifSvc.NotifyBidPlaced(ctx, project, contractor, input.Amount); err != nil {
		log.Printf("Failed to notify customer %s of bid on project %s: %v", project.CustomerID, projectID, err)
	}

	return bid, nil
}

// UpdateProgress applies the sparse patch, then notifies the customer with the
// progress value from the patch itself, present or not.
func (s *service) UpdateProgress(ctx context.Context, projectID uuid.UUID, patch domain.ProgressPatch) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	if err := s.projectRepo.ApplyProgress(ctx, projectID, patch); err != nil {
		return nil, err
	}

	if patch.Update != nil {
		entry := &domain.ProjectUpdate{
			ID:        uuid.New(),
			ProjectID: projectID,
			Text:      *patch.Update,
			Date:      time.Now(),
		}
		if err := s.projectRepo.AppendUpdate(ctx, entry); err != nil {
			return nil, err
		}
	}

	s.invalidateOpenList(ctx)

	if project.CustomerID != uuid.Nil {
		if err := s.notifSvc.NotifyProgressUpdated(ctx, project, patch.Progress); err != nil {
			log.Printf("Failed to notify customer %s of progress on project %s: %v", project.CustomerID, projectID, err)
		}
	}

	return s.GetByID(ctx, projectID)
}

func (s *service) invalidateOpenList(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, openListCacheKey).Err()
	}
}
