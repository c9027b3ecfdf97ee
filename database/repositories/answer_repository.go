package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/utils"
	"gorm.io/gorm"
)

type answerRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Answer, *gorm.DB]
}

func NewAnswerRepository(db *gorm.DB) *answerRepository {
	return &answerRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Answer](db),
	}
}

func (r *answerRepository) ListByAssessmentID(assessmentID uuid.UUID) ([]models.Answer, error) {
	var answers []models.Answer
	if err := r.db.Find(&answers, "assessment_id = ?", assessmentID).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
