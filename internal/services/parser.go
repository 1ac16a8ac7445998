package services

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"mockmate/resume-checker/internal/models"
)

const (
	minMatchPercentage = 0
	maxMatchPercentage = 100
)

var (
	matchPercentageRe = regexp.MustCompile(`(?i)` + labelPattern(LabelMatchPercentage) + `\s*(\d+)`)
	missingSkillsRe   = regexp.MustCompile(`(?is)` + labelPattern(LabelMissingSkills) +
		`(.*?)(?:` + labelPattern(LabelProfileSummary) + `|` + labelPattern(LabelFeedback) + `|$)`)
	profileSummaryRe = regexp.MustCompile(`(?is)` + labelPattern(LabelProfileSummary) +
		`(.*?)(?:` + labelPattern(LabelFeedback) + `|` + labelPattern(LabelMissingSkills) + `|$)`)
	feedbackRe = regexp.MustCompile(`(?is)` + labelPattern(LabelFeedback) + `(.*)$`)
)

// labelPattern matches a section label with any run of whitespace between its words.
func labelPattern(label string) string {
	words := strings.Fields(label)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, `\s+`)
}

// ParseAnalysis turns a free-text model reply into an AnalysisResult. It never
// fails: a field that cannot be found keeps its default value.
func ParseAnalysis(reply string) models.AnalysisResult {
	result := models.NewAnalysisResult()

	if pct, ok := extractMatchPercentage(reply); ok {
		result.MatchPercentage = pct
	}
	if skills, ok := extractMissingSkills(reply); ok {
		result.MissingSkills = skills
	}
	if summary, ok := extractProfileSummary(reply); ok {
		result.ProfileSummary = summary
	}
	if feedback, ok := extractFeedback(reply); ok {
		result.Feedback = feedback
	}

	return result
}

// extractMatchPercentage clamps the value into [0, 100]. Digits too long for
// an int are treated as the upper bound.
func extractMatchPercentage(text string) (int, bool) {
	m := matchPercentageRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	pct, err := strconv.Atoi(m[1])
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return maxMatchPercentage, true
		}
		return 0, false
	}

	return clampPercentage(pct), true
}

func clampPercentage(v int) int {
	if v < minMatchPercentage {
		return minMatchPercentage
	}
	if v > maxMatchPercentage {
		return maxMatchPercentage
	}
	return v
}

// extractMissingSkills keeps only hyphen-bulleted lines of the block, in order.
func extractMissingSkills(text string) ([]string, bool) {
	block, ok := captureSection(missingSkillsRe, text)
	if !ok {
		return nil, false
	}

	skills := []string{}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		skill := strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if skill != "" {
			skills = append(skills, skill)
		}
	}

	return skills, true
}

func extractProfileSummary(text string) (string, bool) {
	block, ok := captureSection(profileSummaryRe, text)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(block), true
}

func extractFeedback(text string) (string, bool) {
	block, ok := captureSection(feedbackRe, text)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(block), true
}

func captureSection(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil || len(m) < 2 {
		return "", false
	}
	return m[1], true
}
