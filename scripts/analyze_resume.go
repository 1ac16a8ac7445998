package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"mockmate/resume-checker/internal/config"
	"mockmate/resume-checker/internal/logging"
	"mockmate/resume-checker/internal/models"
	"mockmate/resume-checker/internal/services"
)

func main() {
	resumePath := flag.String("resume", "", "Path to resume file (pdf or docx)")
	jdPath := flag.String("jd", "", "Path to job description text file")
	userID := flag.String("user", "", "Requester ID for log correlation (optional)")
	flag.Parse()

	cfg := config.Load()

	logger := logging.New(logging.Options{
		Level:       cfg.Log.Level,
		Format:      "console",
		Output:      os.Stderr,
		ServiceName: "analyze-resume",
	})
	log.Logger = logger

	if strings.TrimSpace(*resumePath) == "" || strings.TrimSpace(*jdPath) == "" {
		logger.Fatal().Msg("❌ Both -resume and -jd are required")
	}

	resumeBytes, err := os.ReadFile(*resumePath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *resumePath).Msg("❌ Failed to read resume")
	}

	jdBytes, err := os.ReadFile(*jdPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *jdPath).Msg("❌ Failed to read job description")
	}

	ctx := context.Background()

	generator, err := services.NewTextGenerator(ctx, cfg.LLM.Provider, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.Temperature, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to initialize text generator")
	}

	analyzer := services.NewAnalyzerService(services.NewDocumentExtractor(), generator, logger)

	result, err := analyzer.Analyze(ctx, models.AnalysisRequest{
		DocumentBytes:  resumeBytes,
		DocumentName:   filepath.Base(*resumePath),
		JobDescription: string(jdBytes),
		RequesterID:    *userID,
	})
	if err != nil {
		var analysisErr *services.AnalysisError
		if errors.As(err, &analysisErr) {
			logger.Fatal().Err(analysisErr.Err).Str("kind", string(analysisErr.Kind)).Msg(analysisErr.Message)
		}
		logger.Fatal().Err(err).Msg("❌ Resume analysis failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to write result")
	}
}
