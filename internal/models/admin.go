package models

import "time"

// Admin merepresentasikan tabel 'admin' (operator internal)
type Admin struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        *string   `gorm:"size:100" json:"email"`
	PasswordHash string    `gorm:"column:password;size:100;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type AdminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
