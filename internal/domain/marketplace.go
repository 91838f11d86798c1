package domain

import (
	"time"

	"github.com/google/uuid"
)

type ItemCategory string

const (
	CategoryCement     ItemCategory = "Cement"
	CategoryTiles      ItemCategory = "Tiles"
	CategoryPaint      ItemCategory = "Paint"
	CategorySteel      ItemCategory = "Steel"
	CategoryPlumbing   ItemCategory = "Plumbing"
	CategoryElectrical ItemCategory = "Electrical"
	CategoryWood       ItemCategory = "Wood"
	CategorySand       ItemCategory = "Sand"
	CategoryBricks     ItemCategory = "Bricks"
)

type ItemBrand string

const (
	BrandIndian  ItemBrand = "indian"
	BrandForeign ItemBrand = "foreign"
)

type MarketplaceItem struct {
	ID          uuid.UUID    `json:"id" db:"item_id"`
	Name        string       `json:"name" db:"name"`
	Category    ItemCategory `json:"category" db:"category"`
	Price       float64      `json:"price" db:"price"`
	Unit        string       `json:"unit" db:"unit"`
	Image       string       `json:"image" db:"image"`
	Brand       ItemBrand    `json:"brand" db:"brand"`
	Description string       `json:"description" db:"description"`
	InStock     bool         `json:"in_stock" db:"in_stock"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

type ItemFilter struct {
	Brand    ItemBrand    `query:"brand"`
	Category ItemCategory `query:"category"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID              uuid.UUID   `json:"id" db:"order_id"`
	UserID          uuid.UUID   `json:"user_id" db:"user_id"`
	TotalAmount     float64     `json:"total_amount" db:"total_amount"`
	Status          OrderStatus `json:"status" db:"status"`
	ShippingAddress string      `json:"shipping_address" db:"shipping_address"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`

	Items []OrderItem `json:"items,omitempty" db:"-"`
}

// OrderItem snapshots the item name, price and unit at purchase time.
type OrderItem struct {
	ID       uuid.UUID `json:"id" db:"order_item_id"`
	OrderID  uuid.UUID `json:"-" db:"order_id"`
	ItemID   uuid.UUID `json:"item_id" db:"item_id"`
	Name     string    `json:"name" db:"name"`
	Price    float64   `json:"price" db:"price"`
	Quantity int       `json:"quantity" db:"quantity"`
	Unit     string    `json:"unit" db:"unit"`
}

type CreateOrderInput struct {
	Items           []CartItem `json:"items" validate:"required,min=1"`
	ShippingAddress string     `json:"shipping_address"`
}

type CartItem struct {
	ItemID   uuid.UUID `json:"item_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"min=1"`
}
