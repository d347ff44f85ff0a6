package config

import (
	"errors"
	"os"

	"little-lemon-api/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSuperuser creates the bootstrap superuser from ADMIN_USERNAME and
// ADMIN_PASSWORD when set. Without a superuser there is no first Manager to
// hand out group memberships.
func SeedSuperuser(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.Errorf("superuser seed lookup failed: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Errorf("superuser seed hashing failed: %v", err)
		return
	}
	user := models.User{
		Username:     username,
		Email:        os.Getenv("ADMIN_EMAIL"),
		PasswordHash: string(hash),
		IsSuperuser:  true,
	}
	if err := db.Create(&user).Error; err != nil {
		logrus.Errorf("superuser seed failed: %v", err)
		return
	}
	logrus.Infof("seeded superuser %q", username)
}
