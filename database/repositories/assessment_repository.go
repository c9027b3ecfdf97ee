package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/utils"
	"gorm.io/gorm"
)

type assessmentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Assessment, *gorm.DB]
}

func NewAssessmentRepository(db *gorm.DB) *assessmentRepository {
	return &assessmentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Assessment](db),
	}
}

func (r *assessmentRepository) ReadByOrgID(orgID uuid.UUID, id uuid.UUID) (models.Assessment, error) {
	var assessment models.Assessment
	err := r.db.First(&assessment, "id = ? AND org_id = ?", id, orgID).Error
	return assessment, err
}
