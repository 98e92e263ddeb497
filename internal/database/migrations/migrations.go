package migrations

import (
	"log"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/primevest/backend/internal/models"
	"gorm.io/gorm"
)

// migrationsList holds all migrations in order
var migrationsList = []*gormigrate.Migration{
	CreateInitialSchema(),
	SeedLevelSettings(),
}

// RunMigrations runs all database migrations
func RunMigrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrationsList)

	m.InitSchema(func(tx *gorm.DB) error {
		return AutoMigrate(tx)
	})

	if err := m.Migrate(); err != nil {
		log.Printf("Could not migrate: %v", err)
		return err
	}
	log.Printf("Migrations ran successfully")
	return nil
}

// AutoMigrate creates the full schema from the models. Used for fresh
// databases and for test setups.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Investment{},
		&models.RoiHistory{},
		&models.ReferralIncome{},
		&models.LevelSetting{},
	)
}
