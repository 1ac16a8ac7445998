package models

// AnalysisStage is the position of a resume-match request in its lifecycle.
// Stages only ever move forward; any failure jumps straight to StageFailed.
type AnalysisStage string

const (
	StageReceived     AnalysisStage = "received"
	StageExtracted    AnalysisStage = "extracted"
	StagePrompted     AnalysisStage = "prompted"
	StageModelInvoked AnalysisStage = "model_invoked"
	StageValidated    AnalysisStage = "validated"
	StageParsed       AnalysisStage = "parsed"
	StageReturned     AnalysisStage = "returned"
	StageFailed       AnalysisStage = "failed"
)

// AnalysisRequest is one resume-vs-job-description submission.
type AnalysisRequest struct {
	DocumentBytes  []byte
	DocumentName   string
	JobDescription string
	// RequesterID is optional and only used for logging and history.
	RequesterID string
}

// AnalysisResult is the structured outcome of a resume match.
type AnalysisResult struct {
	MatchPercentage int      `json:"matchPercentage"`
	MissingSkills   []string `json:"missingSkills"`
	ProfileSummary  string   `json:"profileSummary"`
	Feedback        string   `json:"feedback"`
}

// NewAnalysisResult returns a result holding every field's default value.
func NewAnalysisResult() AnalysisResult {
	return AnalysisResult{
		MatchPercentage: 0,
		MissingSkills:   []string{},
		ProfileSummary:  "",
		Feedback:        "",
	}
}
