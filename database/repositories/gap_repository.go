package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/utils"
	"gorm.io/gorm"
)

type gapRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Gap, *gorm.DB]
}

func NewGapRepository(db *gorm.DB) *gapRepository {
	return &gapRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Gap](db),
	}
}

func (r *gapRepository) ListByAssessmentID(assessmentID uuid.UUID) ([]models.Gap, error) {
	var gaps []models.Gap
	if err := r.db.Find(&gaps, "assessment_id = ?", assessmentID).Error; err != nil {
		return nil, err
	}
	return gaps, nil
}
