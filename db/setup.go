package db

import (
	"errors"
	"log"
	"os"

	"github.com/accvalongo/associa/internal/models"
	"github.com/accvalongo/associa/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(dsn string) error {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.Association{},
		&models.User{},
		&models.Activity{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedDefaultAdmin creates the super-admin account if it does not exist yet.
func SeedDefaultAdmin() error {
	var admin models.User

	err := DB.Where("email = ?", types.SuperAdminEmail).First(&admin).Error

	if err == nil {
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("DEFAULT_ADMIN_PASSWORD")

	if password == "" {
		password = "admin123"
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return err
	}

	admin = models.User{
		Email:        types.SuperAdminEmail,
		PasswordHash: string(passwordHash),
		IsAdmin:      true,
	}

	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Created default admin account: %s", types.SuperAdminEmail)

	return nil
}
