package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"seekr/backend/internal/models"
	"seekr/backend/internal/repositories"
)

type ProfileHandler struct {
	profileRepo repositories.ProfileRepository
	logger      *zap.Logger
}

func NewProfileHandler(profileRepo repositories.ProfileRepository, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profileRepo: profileRepo, logger: logger}
}

func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid profile id",
		})
	}

	profile, err := h.profileRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "profile not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    profile,
	})
}

func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid profile id",
		})
	}

	profile, err := h.profileRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "profile not found",
		})
	}

	var update models.Profile
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	update.ID = profile.ID
	update.CreatedAt = profile.CreatedAt

	if err := h.profileRepo.Update(&update); err != nil {
		h.logger.Error("failed to update profile",
			zap.String("profile_id", id.String()),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update profile",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    update,
	})
}

// HandleUpdateResume merges freshly parsed resume fields into an existing
// profile. Empty fields in the payload leave the stored values untouched.
func (h *ProfileHandler) HandleUpdateResume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid profile id",
		})
	}

	profile, err := h.profileRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "profile not found",
		})
	}

	var req models.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	profile.ApplyResume(&req.ResumeFields, req.Text)

	if err := h.profileRepo.Update(profile); err != nil {
		h.logger.Error("failed to save resume fields",
			zap.String("profile_id", id.String()),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update profile",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    profile,
	})
}
