package mocks

import (
	"context"

	"buildease/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MarketplaceRepository struct {
	mock.Mock
}

func (m *MarketplaceRepository) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.MarketplaceItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketplaceItem), args.Error(1)
}

func (m *MarketplaceRepository) GetItem(ctx context.Context, id uuid.UUID) (*domain.MarketplaceItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketplaceItem), args.Error(1)
}
