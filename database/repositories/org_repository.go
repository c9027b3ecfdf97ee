package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/utils"
	"gorm.io/gorm"
)

type orgRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Org, *gorm.DB]
}

func NewOrgRepository(db *gorm.DB) *orgRepository {
	return &orgRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Org](db),
	}
}

func (r *orgRepository) ReadBySlug(slug string) (models.Org, error) {
	var org models.Org
	err := r.db.First(&org, "slug = ?", slug).Error
	return org, err
}
