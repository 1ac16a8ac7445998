package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockmate/resume-checker/internal/models"
)

func TestParseAnalysis_FullReply(t *testing.T) {
	result := ParseAnalysis(sampleReply)

	assert.Equal(t, models.AnalysisResult{
		MatchPercentage: 62,
		MissingSkills:   []string{"Kubernetes", "GraphQL"},
		ProfileSummary:  "Backend engineer with 5 years of Go.",
		Feedback:        "Add cloud experience.",
	}, result)
}

func TestParseAnalysis_MatchPercentage(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  int
	}{
		{"plain", "Match Percentage: 73", 73},
		{"embedded in text", "Here you go.\nMatch Percentage: 73\nThanks", 73},
		{"case insensitive", "match percentage:88", 88},
		{"extra whitespace", "Match   Percentage:   41%", 41},
		{"missing label", "Missing Skills:\n- Go", 0},
		{"label without number", "Match Percentage: high", 0},
		{"above range", "Match Percentage: 150", 100},
		{"negative sign", "Match Percentage: -5", 0},
		{"overflow", "Match Percentage: 99999999999999999999999", 100},
		{"first occurrence wins", "Match Percentage: 10\nMatch Percentage: 90", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAnalysis(tt.reply).MatchPercentage)
		})
	}
}

func TestParseAnalysis_MissingSkills(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			name:  "source order before profile summary",
			reply: "Missing Skills:\n- Python\n- Docker\nProfile Summary:\nSomething",
			want:  []string{"Python", "Docker"},
		},
		{
			name:  "stops at feedback",
			reply: "Missing Skills:\n- Rust\nFeedback:\n- not a skill",
			want:  []string{"Rust"},
		},
		{
			name:  "runs to end of reply",
			reply: "Missing Skills:\n  -   Terraform  \n-AWS",
			want:  []string{"Terraform", "AWS"},
		},
		{
			name:  "non bullet lines ignored",
			reply: "Missing Skills:\nThe candidate lacks:\n- SQL\n* Java\n\n- \nProfile Summary: x",
			want:  []string{"SQL"},
		},
		{
			name:  "label without bullets",
			reply: "Missing Skills:\nNone\nProfile Summary: x",
			want:  []string{},
		},
		{
			name:  "no section",
			reply: "Match Percentage: 50\nFeedback: ok",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAnalysis(tt.reply).MissingSkills
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAnalysis_ProfileSummaryAndFeedback(t *testing.T) {
	reply := "Feedback:\nRewrite the summary.\n\nProfile Summary:\n  Seasoned SRE.  \n"

	result := ParseAnalysis(reply)

	// Profile summary stops at a later Missing Skills or Feedback label only.
	assert.Equal(t, "Seasoned SRE.", result.ProfileSummary)
	// Feedback runs to the end of the reply.
	assert.Equal(t, "Rewrite the summary.\n\nProfile Summary:\n  Seasoned SRE.", result.Feedback)
}

func TestParseAnalysis_MultilineSections(t *testing.T) {
	reply := "Profile Summary:\nLine one.\nLine two.\nMissing Skills:\n- Go\nFeedback:\nFirst.\nSecond."

	result := ParseAnalysis(reply)

	assert.Equal(t, "Line one.\nLine two.", result.ProfileSummary)
	assert.Equal(t, []string{"Go"}, result.MissingSkills)
	assert.Equal(t, "First.\nSecond.", result.Feedback)
}

func TestParseAnalysis_Defaults(t *testing.T) {
	for _, reply := range []string{"", "I cannot help with that.", "<<garbage>>"} {
		assert.Equal(t, models.NewAnalysisResult(), ParseAnalysis(reply), "reply %q", reply)
	}
}

func TestParseAnalysis_Idempotent(t *testing.T) {
	replies := []string{
		sampleReply,
		"Match Percentage: 12",
		"Missing Skills:\n- A\n- B",
		"",
	}

	for _, reply := range replies {
		assert.Equal(t, ParseAnalysis(reply), ParseAnalysis(reply))
	}
}

func TestClampPercentage(t *testing.T) {
	assert.Equal(t, 0, clampPercentage(-1))
	assert.Equal(t, 0, clampPercentage(0))
	assert.Equal(t, 55, clampPercentage(55))
	assert.Equal(t, 100, clampPercentage(100))
	assert.Equal(t, 100, clampPercentage(101))
}

func TestLabelPattern(t *testing.T) {
	assert.Equal(t, `Match\s+Percentage:`, labelPattern(LabelMatchPercentage))
	assert.Equal(t, `Feedback:`, labelPattern(LabelFeedback))
}

func TestParseAnalysis_ReadsPromptLabels(t *testing.T) {
	reply := LabelMatchPercentage + " 44\n" +
		LabelMissingSkills + "\n- Helm\n" +
		LabelProfileSummary + "\nPlatform engineer.\n" +
		LabelFeedback + "\nShow on-call work."

	assert.Equal(t, models.AnalysisResult{
		MatchPercentage: 44,
		MissingSkills:   []string{"Helm"},
		ProfileSummary:  "Platform engineer.",
		Feedback:        "Show on-call work.",
	}, ParseAnalysis(reply))
}
