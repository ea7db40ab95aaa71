package handlers

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"seekr/backend/internal/models"
	"seekr/backend/internal/services"
)

type ResumeHandler struct {
	extractor   services.TextExtractor
	heuristic   services.ExtractionStrategy
	assisted    services.ExtractionStrategy
	maxFileSize int64
	logger      *zap.Logger
}

func NewResumeHandler(
	extractor services.TextExtractor,
	heuristic services.ExtractionStrategy,
	assisted services.ExtractionStrategy,
	maxFileSize int64,
	logger *zap.Logger,
) *ResumeHandler {
	return &ResumeHandler{
		extractor:   extractor,
		heuristic:   heuristic,
		assisted:    assisted,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// HandleParseResume accepts a multipart upload under the "resume" field,
// extracts its text, and structures it with either the rule-based or the
// model-assisted extractor depending on the useAI form flag. The chosen
// mode never falls back to the other one.
func (h *ResumeHandler) HandleParseResume(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return h.validationError(c, services.NewNoFileError())
	}

	if fileHeader.Size > h.maxFileSize {
		return h.validationError(c, services.NewFileTooLargeError(h.maxFileSize))
	}

	mediaType, err := services.DetectMediaType(fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return h.validationError(c, vErr)
		}
		return h.internalError(c, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return h.internalError(c, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return h.internalError(c, err)
	}

	useAI := strings.EqualFold(c.FormValue("useAI"), "true")

	h.logger.Info("processing resume upload",
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
		zap.String("media_type", string(mediaType)),
		zap.Bool("use_ai", useAI))

	text, err := h.extractor.ExtractText(content, mediaType)
	if err != nil {
		var extErr *services.ExtractionError
		if errors.As(err, &extErr) {
			switch extErr.Kind {
			case services.KindUnsupportedFormat, services.KindEmptyDocument:
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error":   extErr.Message,
					"details": string(extErr.Kind),
				})
			}
		}
		return h.internalError(c, err)
	}

	strategy := h.heuristic
	if useAI {
		strategy = h.assisted
	}

	fields, err := strategy.ExtractFields(c.Context(), text)
	if err != nil {
		return h.internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.ParseResumeResponse{
		Success: true,
		Data: models.ParsedResume{
			ResumeFields: fields,
			Text:         text,
		},
	})
}

func (h *ResumeHandler) validationError(c *fiber.Ctx, vErr *services.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   vErr.Message,
		"details": string(vErr.Kind),
	})
}

func (h *ResumeHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error("resume parsing failed", zap.Error(err))

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Failed to parse resume",
		"details": err.Error(),
	})
}
