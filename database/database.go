package database

import (
	"fmt"
	"log"
	"os"

	"curio/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func SetupDatabase() (*gorm.DB, error) {
	var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}
	for _, envVariable := range envVariables {
		if os.Getenv(envVariable) == "" {
			if envVariable == "DB_SSLMODE" {
				if err := os.Setenv("DB_SSLMODE", "disable"); err != nil {
					return nil, err
				}
				continue
			}
			return nil, fmt.Errorf("%s environment variable not set", envVariable)
		}
	}
	dsn := os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		models.User{},
		models.Item{},
		models.Category{},
		models.Location{},
		models.Author{},
		models.PositionSchema{},
		models.Position{},
		models.Content{},
		models.ItemWhitelist{},
		models.AccountDeletion{},
		models.StoredFile{},
	)
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
