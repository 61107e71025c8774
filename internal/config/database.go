package config

import (
	"fmt"
	"log"

	"jasarumah-backend/internal/models"
	"jasarumah-backend/pkg/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectDB membuka koneksi MySQL dan menjalankan auto-migrate
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gagal konek database: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("gagal migrasi database: %w", err)
	}

	if err := seedAdmin(db, cfg); err != nil {
		return nil, fmt.Errorf("gagal seed admin: %w", err)
	}

	log.Println("Database terkoneksi dan termigrasi")
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Mitra{},
		&models.Admin{},
		&models.Service{},
		&models.Order{},
		&models.Notification{},
	)
}

// seedAdmin membuat akun admin pertama kalau tabel admin masih kosong.
// Password diambil dari ADMIN_PASSWORD; kalau kosong, skip (login admin
// baru bisa setelah di-seed manual).
func seedAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || cfg.AdminPassword == "" {
		return nil
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Akun admin awal dibuat:", cfg.AdminUsername)
	return nil
}
