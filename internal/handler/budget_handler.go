package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"buildease/internal/domain"
	"buildease/internal/middleware"
	"buildease/internal/service/budget"
)

type BudgetHandler struct {
	budgetService budget.Service
}

func NewBudgetHandler(budgetService budget.Service) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

func (h *BudgetHandler) Estimate(c *fiber.Ctx) error {
	var input domain.EstimateInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.City == "" || input.Area <= 0 || input.Quality == "" {
		return middleware.BadRequest("City, area, and quality are required")
	}

	estimate, err := h.budgetService.Estimate(input)
	if err != nil {
		if errors.Is(err, domain.ErrCityNotSupported) {
			return middleware.BadRequest("City not supported")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(estimate)
}

func (h *BudgetHandler) Quote(c *fiber.Ctx) error {
	var input domain.QuotationInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.City == "" || input.Area <= 0 || input.Quality == "" {
		return middleware.BadRequest("City, area, and quality are required")
	}

	quotation, err := h.budgetService.Quote(input)
	if err != nil {
		if errors.Is(err, domain.ErrCityNotSupported) {
			return middleware.BadRequest("City not supported")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(quotation)
}

func (h *BudgetHandler) Predict(c *fiber.Ctx) error {
	var input domain.PredictionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.City == "" || input.Area <= 0 || input.Quality == "" {
		return middleware.BadRequest("City, area, and quality are required")
	}

	prediction, err := h.budgetService.Predict(input)
	if err != nil {
		if errors.Is(err, domain.ErrCityNotSupported) {
			return middleware.BadRequest("City not supported")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(prediction)
}

func (h *BudgetHandler) GetRates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.budgetService.Rates())
}
