package models

import "time"

// User merepresentasikan tabel 'users' (customer)
type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Phone        *string   `gorm:"size:20;uniqueIndex" json:"phone"` // Pointer karena akun Google bisa tanpa nomor HP
	Email        *string   `gorm:"size:100;index" json:"email"`
	PasswordHash string    `gorm:"column:password;size:100" json:"-"` // json:"-" biar hash TIDAK pernah ikut response
	GoogleID     *string   `gorm:"size:50;index" json:"-"`
	Address      *string   `gorm:"type:text" json:"address"`
	FCMToken     *string   `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Struct untuk menangkap input Register customer
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required,min=9,max=15"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// Struct untuk menangkap input Login customer
type LoginInput struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcm_token"`
}

// Login via Google: frontend kirim ID token hasil Google Sign-In
type GoogleLoginInput struct {
	Token string `json:"token" binding:"required"`
}

// UpdateProfileInput dipakai customer DAN mitra (partial update).
// Semua field pointer: nil artinya field tidak dikirim, jangan diubah.
type UpdateProfileInput struct {
	Name    *string `json:"name" binding:"omitempty,min=1"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}
