package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"buildease/internal/domain"
	"buildease/internal/middleware"
	"buildease/internal/service/media"
	"buildease/internal/service/project"
)

type ProjectHandler struct {
	projectService project.Service
	mediaService   media.Service
}

func NewProjectHandler(projectService project.Service, mediaService media.Service) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		mediaService:   mediaService,
	}
}

// List returns projects matching the status/type query filters. With no
// filters every project is returned; contractors browsing for work pass
// status=open explicitly.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	filter := domain.ProjectFilter{
		Status: domain.ProjectStatus(c.Query("status")),
		Type:   domain.ProjectType(c.Query("type")),
	}

	if filter.Status != "" && !filter.Status.IsValid() {
		return middleware.BadRequest("Unsupported status filter")
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return middleware.BadRequest("Unsupported type filter")
	}

	projects, err := h.projectService.List(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(projects)
}

func (h *ProjectHandler) ListMine(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	projects, err := h.projectService.ListMine(c.Context(), user.ID, user.Role)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(projects)
}

func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	proj, err := h.projectService.GetByID(c.Context(), projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return middleware.NotFound("Project not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(proj)
}

func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateProjectInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if input.Type != "" && !input.Type.IsValid() {
		return middleware.BadRequest("Unsupported project type")
	}

	proj, err := h.projectService.Create(c.Context(), user.ID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(proj)
}

func (h *ProjectHandler) SubmitBid(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.SubmitBidInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	bid, err := h.projectService.SubmitBid(c.Context(), projectID, user, input)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return middleware.NotFound("Project not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Bid submitted successfully",
		"bid":     bid,
	})
}

func (h *ProjectHandler) UpdateProgress(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	var patch domain.ProgressPatch
	if err := c.BodyParser(&patch); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	proj, err := h.projectService.UpdateProgress(c.Context(), projectID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return middleware.NotFound("Project not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(proj)
}

func (h *ProjectHandler) UploadGalleryImage(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid project ID")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return middleware.BadRequest("Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read image file")
	}
	defer file.Close()

	url, err := h.mediaService.UploadGalleryImage(
		c.Context(), projectID,
		fileHeader.Filename, fileHeader.Size,
		fileHeader.Header.Get("Content-Type"), file,
	)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return middleware.NotFound("Project not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}
