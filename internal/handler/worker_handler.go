package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"buildease/internal/domain"
	"buildease/internal/middleware"
	"buildease/internal/service/worker"
)

type WorkerHandler struct {
	workerService worker.Service
}

func NewWorkerHandler(workerService worker.Service) *WorkerHandler {
	return &WorkerHandler{workerService: workerService}
}

func (h *WorkerHandler) List(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	workers, err := h.workerService.List(c.Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(workers)
}

func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateWorkerInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if !input.Role.IsValid() {
		return middleware.BadRequest("Unsupported worker role")
	}

	created, err := h.workerService.Create(c.Context(), user.ID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *WorkerHandler) Update(c *fiber.Ctx) error {
	workerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid worker ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var patch domain.WorkerPatch
	if err := c.BodyParser(&patch); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if patch.Role != nil && !patch.Role.IsValid() {
		return middleware.BadRequest("Unsupported worker role")
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return middleware.BadRequest("Unsupported worker status")
	}

	updated, err := h.workerService.Update(c.Context(), workerID, user.ID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrWorkerNotFound) {
			return middleware.NotFound("Worker not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *WorkerHandler) Delete(c *fiber.Ctx) error {
	workerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid worker ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.workerService.Delete(c.Context(), workerID, user.ID); err != nil {
		if errors.Is(err, domain.ErrWorkerNotFound) {
			return middleware.NotFound("Worker not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Worker removed"})
}
