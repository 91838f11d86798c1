package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"buildease/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
}

type orderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and its item snapshots in one transaction.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (order_id, user_id, total_amount, status, shipping_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`

	err = tx.QueryRowxContext(ctx, query,
		order.ID, order.UserID, order.TotalAmount, order.Status, order.ShippingAddress,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	itemQuery := `
		INSERT INTO order_items (order_item_id, order_id, item_id, name, price, quantity, unit)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, itemQuery,
			item.ID, item.OrderID, item.ItemID, item.Name, item.Price, item.Quantity, item.Unit,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	var orders []domain.Order
	query := `SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &orders, query, userID); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	var items []domain.OrderItem
	itemQuery, args, err := sqlx.In(`SELECT * FROM order_items WHERE order_id IN (?)`, orderIDs)
	if err != nil {
		return nil, err
	}
	itemQuery = r.db.Rebind(itemQuery)
	if err := r.db.SelectContext(ctx, &items, itemQuery, args...); err != nil {
		return nil, err
	}

	byOrder := make(map[uuid.UUID][]domain.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}

	return orders, nil
}
