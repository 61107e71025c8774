package models

import "time"

// Status pesanan. Alur maju: pending -> accepted -> in_progress -> completed.
// pending bisa ke rejected (ditolak mitra), dan pending/accepted/in_progress
// bisa ke cancelled (dibatalkan customer). Tidak ada jalan kembali ke pending.
const (
	OrderStatusPending    = "pending"
	OrderStatusAccepted   = "accepted"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRejected   = "rejected"
)

// Order merepresentasikan tabel 'orders'.
// TotalPrice adalah SNAPSHOT base_price layanan saat order dibuat,
// jadi perubahan harga katalog tidak mengubah order lama.
type Order struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	UserID        uint64    `gorm:"not null;index" json:"user_id"`
	MitraID       *uint64   `gorm:"index" json:"mitra_id"` // Pointer karena NULL sampai ada mitra yang ambil
	ServiceID     uint      `gorm:"not null" json:"service_id"`
	Address       string    `gorm:"type:text;not null" json:"address"`
	ScheduledDate string    `gorm:"type:date" json:"scheduled_date"` // Format YYYY-MM-DD
	ScheduledTime string    `gorm:"size:5" json:"scheduled_time"`    // Format HH:MM
	TotalPrice    float64   `json:"total_price"`
	Status        string    `gorm:"size:20;default:pending;index" json:"status"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relasi (Preload) biar response order langsung lengkap
	Service Service `gorm:"foreignKey:ServiceID" json:"service"`
	User    User    `gorm:"foreignKey:UserID" json:"customer"`
	Mitra   *Mitra  `gorm:"foreignKey:MitraID" json:"mitra,omitempty"`
}

type CreateOrderInput struct {
	ServiceID     uint   `json:"service_id" binding:"required"`
	Address       string `json:"address" binding:"required"`
	ScheduledDate string `json:"scheduled_date" binding:"required,datetime=2006-01-02"`
	ScheduledTime string `json:"scheduled_time" binding:"required,datetime=15:04"`
	Notes         string `json:"notes"`
}

type RejectOrderInput struct {
	Reason string `json:"reason"`
}

type CompleteOrderInput struct {
	Notes string `json:"notes"`
}

// IsTerminal true untuk status yang tidak boleh bertransisi lagi
func IsTerminalStatus(status string) bool {
	return status == OrderStatusCompleted || status == OrderStatusCancelled || status == OrderStatusRejected
}
