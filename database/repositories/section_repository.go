package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/utils"
	"gorm.io/gorm"
)

type sectionRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Section, *gorm.DB]
}

func NewSectionRepository(db *gorm.DB) *sectionRepository {
	return &sectionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Section](db),
	}
}

func (r *sectionRepository) ListByTemplateID(templateID uuid.UUID) ([]models.Section, error) {
	var sections []models.Section
	if err := r.db.Preload("Questions").Order(`"order" asc`).Find(&sections, "template_id = ?", templateID).Error; err != nil {
		return nil, err
	}
	return sections, nil
}
