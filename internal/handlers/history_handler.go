package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"mockmate/resume-checker/internal/models"
	"mockmate/resume-checker/internal/repositories"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

type HistoryHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewHistoryHandler(analysisRepo repositories.AnalysisRepository) *HistoryHandler {
	return &HistoryHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetHistory handles GET /resume-checker/history/:userId
func (h *HistoryHandler) HandleGetHistory(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("userId"))
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "userId is required",
		})
	}

	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := h.analysisRepo.FindByRequester(userID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to load analysis history",
		})
	}

	items := make([]models.HistoryItem, 0, len(records))
	for _, record := range records {
		items = append(items, models.HistoryItem{
			ID:           record.ID.String(),
			DocumentName: record.DocumentName,
			Result:       record.Result(),
			CreatedAt:    record.CreatedAt,
		})
	}

	return c.JSON(models.HistoryResponse{
		UserID:   userID,
		Count:    len(items),
		Analyses: items,
	})
}
