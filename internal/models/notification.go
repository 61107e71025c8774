package models

import "time"

const (
	NotificationTypeGeneral     = "general"
	NotificationTypeOrderStatus = "order_status"
)

// Notification ditujukan ke TEPAT SATU penerima: user_id atau mitra_id,
// tidak pernah dua-duanya.
type Notification struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    *uint64   `gorm:"index" json:"user_id,omitempty"`
	MitraID   *uint64   `gorm:"index" json:"mitra_id,omitempty"`
	OrderID   *uint64   `gorm:"index" json:"order_id,omitempty"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Type      string    `gorm:"size:20;default:general" json:"type"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
