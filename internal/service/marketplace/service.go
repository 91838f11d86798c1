package marketplace

import (
	"context"

	"github.com/google/uuid"

	"buildease/internal/domain"
	"buildease/internal/repository"
)

type Service interface {
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.MarketplaceItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.MarketplaceItem, error)
	CreateOrder(ctx context.Context, userID uuid.UUID, input domain.CreateOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
}

type service struct {
	marketplaceRepo repository.MarketplaceRepository
	orderRepo       repository.OrderRepository
}

func NewService(marketplaceRepo repository.MarketplaceRepository, orderRepo repository.OrderRepository) Service {
	return &service{
		marketplaceRepo: marketplaceRepo,
		orderRepo:       orderRepo,
	}
}

func (s *service) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.MarketplaceItem, error) {
	return s.marketplaceRepo.ListItems(ctx, filter)
}

func (s *service) GetItem(ctx context.Context, id uuid.UUID) (*domain.MarketplaceItem, error) {
	item, err := s.marketplaceRepo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

// CreateOrder snapshots name, price and unit per line so later catalog edits
// do not rewrite history. Unknown item ids are skipped rather than failing the
// whole order.
func (s *service) CreateOrder(ctx context.Context, userID uuid.UUID, input domain.CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	order := &domain.Order{
		ID:              uuid.New(),
		UserID:          userID,
		Status:          domain.OrderPending,
		ShippingAddress: input.ShippingAddress,
	}

	for _, cartItem := range input.Items {
		item, err := s.marketplaceRepo.GetItem(ctx, cartItem.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}

		quantity := cartItem.Quantity
		if quantity < 1 {
			quantity = 1
		}

		order.TotalAmount += item.Price * float64(quantity)
		order.Items = append(order.Items, domain.OrderItem{
			ID:       uuid.New(),
			OrderID:  order.ID,
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: quantity,
			Unit:     item.Unit,
		})
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *service) ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}
