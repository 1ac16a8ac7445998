package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"mockmate/resume-checker/internal/models"
	"mockmate/resume-checker/internal/services"
)

// SetupRoutes registers every endpoint. history may be nil when analysis
// history is disabled.
func SetupRoutes(app *fiber.App, resume *ResumeHandler, history *HistoryHandler) {
	app.Options("/resume-checker", resume.HandlePreflight)
	app.Post("/resume-checker", resume.HandleAnalyze)

	api := app.Group("/api/v1", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	endpoints := []string{
		"POST /resume-checker",
		"OPTIONS /resume-checker",
		"GET /api/v1/health",
	}

	if history != nil {
		api.Get("/resume-checker/history/:userId", history.HandleGetHistory)
		endpoints = append(endpoints, "GET /api/v1/resume-checker/history/:userId")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "MockMate Resume Checker API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})
}

// formFieldAllowance leaves room for the text fields and multipart framing
// next to a resume of the maximum size.
const formFieldAllowance = 1 << 20

// BodyLimit is the request body limit for a given maximum resume size.
func BodyLimit(maxFileSize int64) int {
	return int(maxFileSize) + formFieldAllowance
}

// NewErrorHandler renders errors that escape handlers in the same {error}
// shape the handlers use. A body over the server limit can only be an
// oversized resume and is reported as such.
func NewErrorHandler(maxFileSize int64) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code == fiber.StatusRequestEntityTooLarge {
			tooLarge := services.NewFileTooLargeError(maxFileSize)
			return c.Status(tooLarge.StatusCode()).JSON(models.ErrorResponse{
				Error: tooLarge.Message,
			})
		}

		return c.Status(code).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}
}
