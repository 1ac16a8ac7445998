package services

import "fmt"

// Section labels the model is asked to emit, in order. The parser anchors on them.
const (
	LabelMatchPercentage = "Match Percentage:"
	LabelMissingSkills   = "Missing Skills:"
	LabelProfileSummary  = "Profile Summary:"
	LabelFeedback        = "Feedback:"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeMatchPrompt creates the ATS analysis prompt for a resume and job description
func (pb *PromptBuilder) BuildResumeMatchPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) resume analyzer.
Your task is to carefully analyze the provided resume against the job description and provide detailed, actionable feedback.

## INSTRUCTIONS:
1. Calculate a match percentage (0-100) based on how well the resume matches the job requirements
2. Identify specific missing skills or keywords from the job description that should be added to the resume
3. Write a brief but detailed feedback on how to improve the resume for this specific job
4. Create a short professional profile summary based on the resume contents

## RESPONSE FORMAT:
%s [number between 0-100]

%s
- [specific skill 1 mentioned in job description but missing in resume]
- [specific skill 2 mentioned in job description but missing in resume]
- [etc.]

%s
[1-2 sentence professional summary highlighting candidate's experience and strengths]

%s
[detailed paragraph with 3-5 specific recommendations to improve the resume]

Use exactly these four section labels, in this order, as plain text without markdown formatting.

## INPUT DATA:
Resume:
%s

Job Description:
%s
`,
		LabelMatchPercentage, LabelMissingSkills, LabelProfileSummary, LabelFeedback,
		resumeText, jobDescription)
}
