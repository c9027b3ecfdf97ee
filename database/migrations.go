package database

import (
	"github.com/l3montree-dev/gapguard/database/models"
	"gorm.io/gorm"
)

// RunMigrationsWithDB runs the gorm auto migrations using an existing
// database connection.
func RunMigrationsWithDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Org{},
		&models.Template{},
		&models.Section{},
		&models.Question{},
		&models.Assessment{},
		&models.AssessmentPriorities{},
		&models.Gap{},
		&models.Answer{},
		&models.Vendor{},
	)
}
