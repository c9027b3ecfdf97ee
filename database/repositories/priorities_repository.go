package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type prioritiesRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.AssessmentPriorities, *gorm.DB]
}

func NewPrioritiesRepository(db *gorm.DB) *prioritiesRepository {
	return &prioritiesRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.AssessmentPriorities](db),
	}
}

func (r *prioritiesRepository) GetByAssessmentID(assessmentID uuid.UUID) (models.AssessmentPriorities, error) {
	var priorities models.AssessmentPriorities
	err := r.db.First(&priorities, "assessment_id = ?", assessmentID).Error
	return priorities, err
}

// Upsert creates the questionnaire on first submission and updates it on
// every later one - there is at most one row per assessment.
func (r *prioritiesRepository) Upsert(tx *gorm.DB, priorities *models.AssessmentPriorities) error {
	return r.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "assessment_id"}},
		UpdateAll: true,
	}).Create(priorities).Error
}
