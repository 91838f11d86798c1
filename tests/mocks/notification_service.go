package mocks

import (
	"context"

	"buildease/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) Notify(ctx context.Context, userID uuid.UUID, notifType, text string) error {
	args := m.Called(ctx, userID, notifType, text)
	return args.Error(0)
}

func (m *NotificationService) List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) (*domain.Notification, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) NotifyBidPlaced(ctx context.Context, project *domain.Project, bidder *domain.User, amount string) error {
	args := m.Called(ctx, project, bidder, amount)
	return args.Error(0)
}

func (m *NotificationService) NotifyProgressUpdated(ctx context.Context, project *domain.Project, progress *int) error {
	args := m.Called(ctx, project, progress)
	return args.Error(0)
}
