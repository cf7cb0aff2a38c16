package database

import (
	"errors"
	"time"

	"leave-management-backend/config"
	"leave-management-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the default admin account (with its employee profile)
// when no user with the configured email exists yet. Safe to run repeatedly.
func SeedAdmin(db *gorm.DB) (created bool, err error) {
	email := config.GetEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	password := config.GetEnv("SEED_ADMIN_PASSWORD", "admin123")

	var existing model.User
	err = db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	now := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		admin := model.User{
			Username:     "admin",
			Email:        email,
			PasswordHash: string(hash),
			Role:         model.RoleAdmin,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		profile := model.Employee{
			UserID:      admin.UserID,
			FirstName:   "Admin",
			LastName:    "",
			DateOfBirth: now,
			Department:  "Administration",
			Position:    "Administrator",
			DateJoined:  now,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
