package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"buildease/internal/domain"
	"buildease/internal/middleware"
	"buildease/internal/service/contractor"
)

type ContractorHandler struct {
	contractorService contractor.Service
}

func NewContractorHandler(contractorService contractor.Service) *ContractorHandler {
	return &ContractorHandler{contractorService: contractorService}
}

func (h *ContractorHandler) List(c *fiber.Ctx) error {
	contractors, err := h.contractorService.List(c.Context(), c.Query("specialization"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(contractors)
}

func (h *ContractorHandler) Get(c *fiber.Ctx) error {
	contractorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid contractor ID")
	}

	found, err := h.contractorService.GetByID(c.Context(), contractorID)
	if err != nil {
		if errors.Is(err, domain.ErrContractorNotFound) {
			return middleware.NotFound("Contractor not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}
