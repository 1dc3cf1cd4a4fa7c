package database

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"konisurabaya_backend/internals/constants"
	userModel "konisurabaya_backend/internals/features/users/user/model"
)

// SeedAdminKoni membuat akun Admin KONI pertama dari env. Registrasi biasa
// hanya lewat token undangan, dan undangan hanya bisa dibuat Admin KONI —
// jadi akun pertamanya harus di-seed. No-op kalau env kosong atau akun
// sudah ada.
func SeedAdminKoni(db *gorm.DB) {
	email := os.Getenv("ADMIN_KONI_EMAIL")
	password := os.Getenv("ADMIN_KONI_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing userModel.UserModel
	err := db.Where("user_email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] Seed admin KONI: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Seed admin KONI: %v", err)
		return
	}

	user := userModel.UserModel{
		UserUsername:     "admin_koni",
		UserEmail:        email,
		UserPasswordHash: string(hash),
		UserRole:         constants.RoleAdminKoni,
		UserIsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("[ERROR] Seed admin KONI: %v", err)
		return
	}
	log.Printf("✅ Akun Admin KONI ter-seed (%s)", email)
}
