package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"seekr/backend/internal/models"
	"seekr/backend/internal/repositories"
	"seekr/backend/internal/services"
)

type DraftHandler struct {
	profileRepo repositories.ProfileRepository
	oppRepo     repositories.OpportunityRepository
	drafter     services.Drafter
	logger      *zap.Logger
}

func NewDraftHandler(
	profileRepo repositories.ProfileRepository,
	oppRepo repositories.OpportunityRepository,
	drafter services.Drafter,
	logger *zap.Logger,
) *DraftHandler {
	return &DraftHandler{
		profileRepo: profileRepo,
		oppRepo:     oppRepo,
		drafter:     drafter,
		logger:      logger,
	}
}

func (h *DraftHandler) HandleDraftEmail(c *fiber.Ctx) error {
	var req models.DraftEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	id, err := uuid.Parse(req.ProfileID)
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

	opportunity, err := h.oppRepo.FindByID(req.OpportunityID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "opportunity not found",
		})
	}

	email, fallbackUsed := h.drafter.Draft(c.Context(), profile, opportunity, services.ParseDraftIntent(req.Intent))

	h.logger.Info("drafted outreach email",
		zap.String("profile_id", id.String()),
		zap.String("opportunity_id", opportunity.ID),
		zap.Bool("fallback_used", fallbackUsed))

	return c.JSON(models.DraftEmailResponse{
		Success: true,
		Data: models.DraftEmailData{
			Email:        email,
			FallbackUsed: fallbackUsed,
		},
	})
}
