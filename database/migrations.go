package database

import (
	"log"
	"os"

	"github.com/Rajneesh001-hub/GiveEasy/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate creates/updates the schema for all ledger tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Campaign{},
		&models.Donation{},
		&models.RevokedToken{},
	)
}

// SeedAdmin upserts the bootstrap admin account from ADMIN_EMAIL /
// ADMIN_PASSWORD. Re-running is a no-op for an existing email.
func SeedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[database] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     os.Getenv("ADMIN_NAME"),
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if admin.Name == "" {
		admin.Name = "Admin"
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error
}
