package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"buildease/internal/domain"
)

type MarketplaceRepository interface {
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.MarketplaceItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.MarketplaceItem, error)
}

type marketplaceRepository struct {
	db *sqlx.DB
}

func NewMarketplaceRepository(db *sqlx.DB) MarketplaceRepository {
	return &marketplaceRepository{db: db}
}

func (r *marketplaceRepository) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.MarketplaceItem, error) {
	conditions := []string{}
	args := []interface{}{}

	if filter.Brand != "" {
		args = append(args, filter.Brand)
		conditions = append(conditions, fmt.Sprintf("brand = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	query := `SELECT * FROM marketplace_items`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY category ASC, name ASC"

	var items []domain.MarketplaceItem
	err := r.db.SelectContext(ctx, &items, query, args...)
	return items, err
}

func (r *marketplaceRepository) GetItem(ctx context.Context, id uuid.UUID) (*domain.MarketplaceItem, error) {
	var item domain.MarketplaceItem
	query := `SELECT * FROM marketplace_items WHERE item_id = $1`

	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
