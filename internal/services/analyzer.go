package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mockmate/resume-checker/internal/cache"
	"mockmate/resume-checker/internal/models"
)

const (
	extractedPreviewLen = 100
	replyPreviewLen     = 300
)

type AnalyzerService interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

type AnalyzerOption func(*analyzerService)

// WithResultCache memoizes successful results for identical submissions.
func WithResultCache(c cache.Client, ttl time.Duration) AnalyzerOption {
	return func(a *analyzerService) {
		a.cache = c
		a.cacheTTL = ttl
	}
}

// WithHistory hands completed analyses with a requester ID to sink.
func WithHistory(sink HistorySink) AnalyzerOption {
	return func(a *analyzerService) {
		a.history = sink
	}
}

type analyzerService struct {
	extractor     DocumentExtractor
	generator     TextGenerator
	promptBuilder *PromptBuilder
	cache         cache.Client
	cacheTTL      time.Duration
	history       HistorySink
	logger        zerolog.Logger
}

func NewAnalyzerService(
	extractor DocumentExtractor,
	generator TextGenerator,
	logger zerolog.Logger,
	opts ...AnalyzerOption,
) AnalyzerService {
	a := &analyzerService{
		extractor:     extractor,
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		logger:        logger.With().Str("component", "analyzer").Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs one request through extraction, prompting, the model call,
// reply validation and parsing, strictly in that order. The first failing
// stage ends the request with an *AnalysisError.
func (a *analyzerService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	requestID := uuid.New()
	logger := a.logger.With().
		Str("request_id", requestID.String()).
		Str("user_id", req.RequesterID).
		Logger()

	stage := models.StageReceived
	logger.Info().Str("document", req.DocumentName).Int("bytes", len(req.DocumentBytes)).Msg("🔄 Resume analysis received")

	if len(req.DocumentBytes) == 0 {
		return nil, a.fail(logger, stage, NewMissingFieldError("No resume file provided"))
	}
	jobDescription := strings.TrimSpace(req.JobDescription)
	if jobDescription == "" {
		return nil, a.fail(logger, stage, NewMissingFieldError("No job description provided"))
	}

	var cacheKey string
	if a.cache != nil {
		cacheKey = ResultCacheKey(req.DocumentBytes, jobDescription)
		if cached, ok := a.lookupCache(ctx, logger, cacheKey); ok {
			a.recordHistory(requestID, req, cached)
			logger.Info().Int("match_percentage", cached.MatchPercentage).Msg("✅ Resume analysis served from cache")
			return cached, nil
		}
	}

	// Step 1: Extract resume text
	content, err := a.extractor.Extract(ctx, req.DocumentBytes)
	if err != nil {
		return nil, a.fail(logger, stage, asAnalysisError(err, NewDocumentParseError))
	}
	stage = models.StageExtracted
	logger.Info().
		Str("mime", content.MimeType).
		Int("pages", content.PageCount).
		Str("preview", preview(content.Text, extractedPreviewLen)).
		Msg("📄 Resume text extracted")

	// Step 2: Compose prompt
	prompt := a.promptBuilder.BuildResumeMatchPrompt(content.Text, jobDescription)
	stage = models.StagePrompted
	logger.Debug().Int("prompt_length", len(prompt)).Msg("📝 Prompt composed")

	// Step 3: Invoke model, single attempt
	reply, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, a.fail(logger, stage, asAnalysisError(err, NewModelInvocationError))
	}
	stage = models.StageModelInvoked
	logger.Info().Int("reply_length", len(reply)).Msg("🤖 Model reply received")

	// Step 4: Validate reply
	if err := ValidateModelReply(reply); err != nil {
		return nil, a.fail(logger, stage, asAnalysisError(err, NewModelInvocationError))
	}
	stage = models.StageValidated
	logger.Debug().Str("preview", preview(reply, replyPreviewLen)).Msg("AI response to parse")

	// Step 5: Parse, never fails
	result := ParseAnalysis(reply)
	stage = models.StageParsed
	logger.Info().
		Int("match_percentage", result.MatchPercentage).
		Int("missing_skills", len(result.MissingSkills)).
		Int("summary_length", len(result.ProfileSummary)).
		Int("feedback_length", len(result.Feedback)).
		Msg("✅ Resume analysis parsed")

	if a.cache != nil {
		a.storeCache(ctx, logger, cacheKey, &result)
	}
	a.recordHistory(requestID, req, &result)

	logger.Debug().Str("stage", string(models.StageReturned)).Msg("Resume analysis returned")
	return &result, nil
}

func (a *analyzerService) fail(logger zerolog.Logger, stage models.AnalysisStage, err *AnalysisError) error {
	err.Stage = models.StageFailed
	err.LastStage = stage
	event := logger.Warn()
	if err.Kind != KindClientInput {
		event = logger.Error()
	}
	event.Err(err.Err).
		Str("kind", string(err.Kind)).
		Str("last_stage", string(stage)).
		Msg("❌ Resume analysis failed")
	return err
}

// asAnalysisError keeps typed pipeline errors and wraps anything else with wrap.
func asAnalysisError(err error, wrap func(error) *AnalysisError) *AnalysisError {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae
	}
	return wrap(err)
}

func (a *analyzerService) lookupCache(ctx context.Context, logger zerolog.Logger, key string) (*models.AnalysisResult, bool) {
	raw, err := a.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Warn().Err(err).Msg("⚠️ Result cache read failed")
		}
		return nil, false
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		logger.Warn().Err(err).Msg("⚠️ Cached result is corrupt, ignoring")
		return nil, false
	}
	if result.MissingSkills == nil {
		result.MissingSkills = []string{}
	}
	return &result, true
}

func (a *analyzerService) storeCache(ctx context.Context, logger zerolog.Logger, key string, result *models.AnalysisResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		logger.Warn().Err(err).Msg("⚠️ Failed to encode result for cache")
		return
	}
	if err := a.cache.Set(ctx, key, raw, a.cacheTTL); err != nil {
		logger.Warn().Err(err).Msg("⚠️ Result cache write failed")
	}
}

func (a *analyzerService) recordHistory(requestID uuid.UUID, req models.AnalysisRequest, result *models.AnalysisResult) {
	if a.history == nil || req.RequesterID == "" {
		return
	}

	skills := make([]string, len(result.MissingSkills))
	copy(skills, result.MissingSkills)

	a.history.Enqueue(models.AnalysisRecord{
		ID:              uuid.New(),
		RequestID:       requestID,
		RequesterID:     req.RequesterID,
		DocumentName:    req.DocumentName,
		MatchPercentage: result.MatchPercentage,
		MissingSkills:   skills,
		ProfileSummary:  result.ProfileSummary,
		Feedback:        result.Feedback,
		CreatedAt:       time.Now(),
	})
}

// ResultCacheKey identifies a submission by the content of both inputs.
func ResultCacheKey(document []byte, jobDescription string) string {
	docSum := sha256.Sum256(document)
	jdSum := sha256.Sum256([]byte(strings.TrimSpace(jobDescription)))
	return hex.EncodeToString(docSum[:]) + ":" + hex.EncodeToString(jdSum[:])
}

func preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	return string([]rune(text)[:n])
}
