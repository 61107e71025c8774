package models

import "time"

// Service merepresentasikan katalog layanan (pijat, bersih rumah, servis AC)
type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Type        string    `gorm:"size:20;not null;index" json:"type"`
	Description *string   `gorm:"type:text" json:"description"`
	BasePrice   float64   `gorm:"not null" json:"base_price"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=massage cleaning ac_service"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price" binding:"required,gte=0"`
}

// Partial update: field nil tidak disentuh
type UpdateServiceInput struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Type        *string  `json:"type" binding:"omitempty,oneof=massage cleaning ac_service"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"base_price" binding:"omitempty,gte=0"`
	IsActive    *bool    `json:"is_active"`
}
