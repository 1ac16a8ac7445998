package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is a completed analysis kept for a requester's history.
type AnalysisRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequestID       uuid.UUID `gorm:"type:uuid;not null" json:"request_id"`
	RequesterID     string    `gorm:"type:text;not null;index" json:"requester_id"`
	DocumentName    string    `gorm:"type:text" json:"document_name"`
	MatchPercentage int       `gorm:"not null;default:0" json:"match_percentage"`
	MissingSkills   []string  `gorm:"type:jsonb;serializer:json" json:"missing_skills"`
	ProfileSummary  string    `gorm:"type:text" json:"profile_summary"`
	Feedback        string    `gorm:"type:text" json:"feedback"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
}

func (AnalysisRecord) TableName() string {
	return "analysis_records"
}

// Result converts the stored record back to its wire form.
func (r AnalysisRecord) Result() AnalysisResult {
	skills := r.MissingSkills
	if skills == nil {
		skills = []string{}
	}
	return AnalysisResult{
		MatchPercentage: r.MatchPercentage,
		MissingSkills:   skills,
		ProfileSummary:  r.ProfileSummary,
		Feedback:        r.Feedback,
	}
}
