package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"buildease/internal/domain"
	"buildease/internal/middleware"
	"buildease/internal/service/marketplace"
)

type MarketplaceHandler struct {
	marketplaceService marketplace.Service
}

func NewMarketplaceHandler(marketplaceService marketplace.Service) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceService: marketplaceService}
}

func (h *MarketplaceHandler) ListItems(c *fiber.Ctx) error {
	filter := domain.ItemFilter{
		Brand:    domain.ItemBrand(c.Query("brand")),
		Category: domain.ItemCategory(c.Query("category")),
	}

	items, err := h.marketplaceService.ListItems(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *MarketplaceHandler) GetItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid item ID")
	}

	item, err := h.marketplaceService.GetItem(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return middleware.NotFound("Item not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *MarketplaceHandler) CreateOrder(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	order, err := h.marketplaceService.CreateOrder(c.Context(), user.ID, input)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyOrder) {
			return middleware.BadRequest("No items in order")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

func (h *MarketplaceHandler) ListOrders(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	orders, err := h.marketplaceService.ListOrders(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}
