package models

import "time"

// Tipe layanan yang tersedia di platform
const (
	ServiceTypeMassage   = "massage"
	ServiceTypeCleaning  = "cleaning"
	ServiceTypeACService = "ac_service"
)

// Mitra merepresentasikan tabel 'mitra' (penyedia jasa).
// Satu mitra hanya menangani satu tipe layanan.
type Mitra struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Phone        string    `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email        *string   `gorm:"size:100" json:"email"`
	PasswordHash string    `gorm:"column:password;size:100;not null" json:"-"`
	Address      string    `gorm:"type:text;not null" json:"address"`
	ServiceType  string    `gorm:"size:20;not null;index" json:"service_type"`
	IsVerified   bool      `gorm:"default:false" json:"is_verified"` // Diubah admin setelah cek kelengkapan data
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	FCMToken     *string   `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type MitraRegisterInput struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required,min=9,max=15"`
	Password    string `json:"password" binding:"required,min=6"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address" binding:"required"`
	ServiceType string `json:"service_type" binding:"required,oneof=massage cleaning ac_service"`
}

type MitraLoginInput struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcm_token"`
}

// Input admin saat verifikasi / aktivasi mitra
type VerifyMitraInput struct {
	IsVerified *bool `json:"is_verified" binding:"required"`
}

type MitraStatusInput struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
