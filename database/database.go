package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/PEREIRAD01/backend-Pitstoppro/models"
)

// Connect opens the Postgres connection and runs migrations. TranslateError
// lets the stores detect unique violations as gorm.ErrDuplicatedKey.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	log.Println("Database connection successfully opened.")

	if err := db.AutoMigrate(&models.User{}, &models.Vehicle{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	log.Println("Database migrated successfully.")

	return db, nil
}
