package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/gapguard/database/models"
	"github.com/l3montree-dev/gapguard/utils"
	"gorm.io/gorm"
)

type vendorRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Vendor, *gorm.DB]
}

func NewVendorRepository(db *gorm.DB) *vendorRepository {
	return &vendorRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Vendor](db),
	}
}

func (r *vendorRepository) ListApproved() ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.Find(&vendors, "status = ?", models.VendorStatusApproved).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// ListApprovedByCategories returns approved vendors whose category set
// intersects the given categories. The categories column is a jsonb array,
// so the intersection is done with the jsonb containment operator per
// element.
func (r *vendorRepository) ListApprovedByCategories(categories []models.RiskCategory) ([]models.Vendor, error) {
	if len(categories) == 0 {
		return []models.Vendor{}, nil
	}

	query := r.db.Where("status = ?", models.VendorStatusApproved)

	orClause := r.db.Session(&gorm.Session{NewDB: true})
	for i, category := range categories {
		if i == 0 {
			orClause = orClause.Where("categories @> ?", `["`+string(category)+`"]`)
		} else {
			orClause = orClause.Or("categories @> ?", `["`+string(category)+`"]`)
		}
	}

	var vendors []models.Vendor
	if err := query.Where(orClause).Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}
