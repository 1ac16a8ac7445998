package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"mockmate/resume-checker/internal/models"
)

func TestAnalysisError_Classification(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      *AnalysisError
		sentinel error
		kind     ErrorKind
		status   int
	}{
		{"missing field", NewMissingFieldError("No resume file provided"), ErrMissingField, KindClientInput, http.StatusBadRequest},
		{"file too large", NewFileTooLargeError(10), ErrFileTooLarge, KindClientInput, http.StatusBadRequest},
		{"document parse", NewDocumentParseError(cause), ErrDocumentParse, KindClientInput, http.StatusBadRequest},
		{"empty document", NewEmptyDocumentError(), ErrEmptyDocument, KindClientInput, http.StatusBadRequest},
		{"configuration", NewConfigurationError("API key is missing."), ErrConfiguration, KindConfiguration, http.StatusInternalServerError},
		{"model invocation", NewModelInvocationError(cause), ErrModelInvocation, KindUpstream, http.StatusInternalServerError},
		{"empty reply", NewEmptyModelReplyError(), ErrEmptyModelReply, KindUpstream, http.StatusInternalServerError},
		{"html reply", NewUnexpectedHTMLReplyError(), ErrUnexpectedHTMLReply, KindUpstream, http.StatusInternalServerError},
		{"internal", NewInternalError("x", cause), ErrInternal, KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.status, tt.err.StatusCode())
			assert.NotEmpty(t, tt.err.Message)
			assert.Equal(t, models.StageFailed, tt.err.Stage)
			assert.Equal(t, models.StageReceived, tt.err.LastStage)
		})
	}
}

func TestAnalysisError_WrapsCause(t *testing.T) {
	cause := errors.New("xref table not found")

	err := NewDocumentParseError(cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Failed to parse PDF file. Please ensure it's a valid PDF.", err.Error())
}

func TestAnalysisError_ConfigurationMessage(t *testing.T) {
	err := NewConfigurationError("API key is missing.")

	assert.Equal(t,
		"Failed to analyze resume due to AI service error. Server configuration error: API key is missing.",
		err.Error(),
	)
}
