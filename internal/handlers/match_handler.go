package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"seekr/backend/internal/models"
	"seekr/backend/internal/repositories"
	"seekr/backend/internal/services"
)

type MatchHandler struct {
	profileRepo repositories.ProfileRepository
	oppRepo     repositories.OpportunityRepository
	matcher     services.Matcher
	logger      *zap.Logger
}

func NewMatchHandler(
	profileRepo repositories.ProfileRepository,
	oppRepo repositories.OpportunityRepository,
	matcher services.Matcher,
	logger *zap.Logger,
) *MatchHandler {
	return &MatchHandler{
		profileRepo: profileRepo,
		oppRepo:     oppRepo,
		matcher:     matcher,
		logger:      logger,
	}
}

func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchRequest
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

	opportunities, err := h.oppRepo.List()
	if err != nil {
		h.logger.Error("failed to load opportunities", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load opportunities",
		})
	}

	matches := h.matcher.Match(profile, opportunities)

	return c.JSON(models.MatchResponse{
		Success: true,
		Data:    models.MatchData{Matches: matches},
	})
}
