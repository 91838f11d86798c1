package contractor

import (
	"context"

	"github.com/google/uuid"

	"buildease/internal/domain"
	"buildease/internal/repository"
)

type Service interface {
	List(ctx context.Context, specialization string) ([]domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type service struct {
	userRepo repository.UserRepository
}

func NewService(userRepo repository.UserRepository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) List(ctx context.Context, specialization string) ([]domain.User, error) {
	return s.userRepo.ListContractors(ctx, specialization)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != string(domain.RoleContractor) {
		return nil, domain.ErrContractorNotFound
	}
	return user, nil
}
