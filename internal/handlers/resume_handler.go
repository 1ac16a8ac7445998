package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"mockmate/resume-checker/internal/models"
	"mockmate/resume-checker/internal/services"
)

type ResumeHandler struct {
	analyzer     services.AnalyzerService
	uploadReader services.UploadReader
	logger       zerolog.Logger
}

func NewResumeHandler(
	analyzer services.AnalyzerService,
	uploadReader services.UploadReader,
	logger zerolog.Logger,
) *ResumeHandler {
	return &ResumeHandler{
		analyzer:     analyzer,
		uploadReader: uploadReader,
		logger:       logger.With().Str("component", "resume_handler").Logger(),
	}
}

// HandlePreflight handles OPTIONS /resume-checker
func (h *ResumeHandler) HandlePreflight(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowMethods, "POST, OPTIONS")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
	return c.Status(fiber.StatusOK).JSON(nil)
}

// HandleAnalyze handles POST /resume-checker
func (h *ResumeHandler) HandleAnalyze(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")

	resumeFile, err := c.FormFile("resume")
	if err != nil || resumeFile == nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "No resume file provided",
		})
	}

	jobDescription := c.FormValue("jobDescription")
	if strings.TrimSpace(jobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "No job description provided",
		})
	}

	userID := strings.TrimSpace(c.FormValue("userId"))

	data, err := h.uploadReader.ReadFile(resumeFile)
	if err != nil {
		return writeError(c, err)
	}

	result, err := h.analyzer.Analyze(c.UserContext(), models.AnalysisRequest{
		DocumentBytes:  data,
		DocumentName:   resumeFile.Filename,
		JobDescription: jobDescription,
		RequesterID:    userID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func writeError(c *fiber.Ctx, err error) error {
	var analysisErr *services.AnalysisError
	if errors.As(err, &analysisErr) {
		return c.Status(analysisErr.StatusCode()).JSON(models.ErrorResponse{
			Error: analysisErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: "An unexpected server error occurred while processing the resume. " + err.Error(),
	})
}
