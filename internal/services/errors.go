package services

import (
	"errors"
	"fmt"
	"net/http"

	"mockmate/resume-checker/internal/models"
)

// ErrorKind classifies a pipeline failure by who is at fault.
type ErrorKind string

const (
	KindClientInput   ErrorKind = "client_input"
	KindConfiguration ErrorKind = "configuration"
	KindUpstream      ErrorKind = "upstream"
	KindInternal      ErrorKind = "internal"
)

// StatusCode maps the kind to the HTTP status reported to the caller.
func (k ErrorKind) StatusCode() int {
	if k == KindClientInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

var (
	ErrMissingField        = errors.New("missing required field")
	ErrFileTooLarge        = errors.New("file too large")
	ErrDocumentParse       = errors.New("document parse error")
	ErrEmptyDocument       = errors.New("empty document")
	ErrConfiguration       = errors.New("configuration error")
	ErrModelInvocation     = errors.New("model invocation error")
	ErrEmptyModelReply     = errors.New("empty model reply")
	ErrUnexpectedHTMLReply = errors.New("unexpected html reply")
	ErrInternal            = errors.New("internal error")
)

// AnalysisError is a terminal pipeline failure. Message is safe to show to
// the caller; Err carries the sentinel and the underlying cause. Stage is
// always StageFailed, LastStage is the last stage the request reached.
type AnalysisError struct {
	Kind      ErrorKind
	Stage     models.AnalysisStage
	LastStage models.AnalysisStage
	Message   string
	Err       error
}

func (e *AnalysisError) Error() string {
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func (e *AnalysisError) StatusCode() int {
	return e.Kind.StatusCode()
}

func newAnalysisError(kind ErrorKind, sentinel error, message string, cause error) *AnalysisError {
	err := sentinel
	if cause != nil {
		err = fmt.Errorf("%w: %w", sentinel, cause)
	}
	return &AnalysisError{
		Kind:      kind,
		Stage:     models.StageFailed,
		LastStage: models.StageReceived,
		Message:   message,
		Err:       err,
	}
}

func NewMissingFieldError(message string) *AnalysisError {
	return newAnalysisError(KindClientInput, ErrMissingField, message, nil)
}

func NewFileTooLargeError(maxFileSize int64) *AnalysisError {
	return newAnalysisError(KindClientInput, ErrFileTooLarge,
		fmt.Sprintf("Resume file too large. Max size: %d bytes", maxFileSize), nil)
}

func NewDocumentParseError(cause error) *AnalysisError {
	return newAnalysisError(KindClientInput, ErrDocumentParse,
		"Failed to parse PDF file. Please ensure it's a valid PDF.", cause)
}

func NewEmptyDocumentError() *AnalysisError {
	return newAnalysisError(KindClientInput, ErrEmptyDocument, "Extracted resume text is empty", nil)
}

func NewConfigurationError(message string) *AnalysisError {
	return newAnalysisError(KindConfiguration, ErrConfiguration,
		"Failed to analyze resume due to AI service error. Server configuration error: "+message, nil)
}

func NewModelInvocationError(cause error) *AnalysisError {
	msg := "Failed to analyze resume due to AI service error."
	if cause != nil {
		msg += " " + cause.Error()
	}
	return newAnalysisError(KindUpstream, ErrModelInvocation, msg, cause)
}

func NewEmptyModelReplyError() *AnalysisError {
	return newAnalysisError(KindUpstream, ErrEmptyModelReply,
		"Failed to analyze resume due to AI service error. AI service returned an unexpected response structure or empty text.", nil)
}

func NewUnexpectedHTMLReplyError() *AnalysisError {
	return newAnalysisError(KindUpstream, ErrUnexpectedHTMLReply,
		"AI API error: received HTML content instead of expected text response", nil)
}

func NewInternalError(message string, cause error) *AnalysisError {
	return newAnalysisError(KindInternal, ErrInternal,
		"An unexpected server error occurred while processing the resume. "+message, cause)
}
