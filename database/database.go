package database

import (
	"fmt"

	"github.com/instructormatch/instructor_match/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres pool. The handle is passed down to the storage
// layer instead of living in a package global so tests can substitute an
// in-memory implementation.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:              false,
		SkipDefaultTransaction:   true,
		DisableNestedTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Instructor{},
		&models.TrainingRequest{},
		&models.Application{},
		&models.Contract{},
		&models.Payment{},
		&models.Review{},
		&models.Notification{},
	)
}
