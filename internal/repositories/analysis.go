package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"mockmate/resume-checker/internal/models"
)

type AnalysisRepository interface {
	Create(record *models.AnalysisRecord) error
	FindByRequester(requesterID string, limit int) ([]models.AnalysisRecord, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(record *models.AnalysisRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create analysis record: %w", err)
	}
	return nil
}

func (r *analysisRepository) FindByRequester(requesterID string, limit int) ([]models.AnalysisRecord, error) {
	var records []models.AnalysisRecord
	err := r.db.
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find analysis records: %w", err)
	}

	return records, nil
}
