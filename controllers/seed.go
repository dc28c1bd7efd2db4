package controllers

import (
	"errors"
	"os"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"gorm.io/gorm"
)

// EnsureAdminUser creates the admin account from ADMIN_PHONE/ADMIN_PASSWORD
// if it does not exist yet. Skipped when the env vars are unset.
func EnsureAdminUser() error {
	phone := os.Getenv("ADMIN_PHONE")
	password := os.Getenv("ADMIN_PASSWORD")
	if phone == "" || password == "" {
		return nil
	}

	var existing models.User
	err := config.DB.Where("phone = ?", phone).First(&existing).Error
	if err == nil {
		if !existing.IsAdmin {
			return config.DB.Model(&existing).Update("is_admin", true).Error
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{
		Phone:    phone,
		Password: hash,
		IsAdmin:  true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}
	utils.LogInfo("Admin account created for %s", phone)
	return nil
}
