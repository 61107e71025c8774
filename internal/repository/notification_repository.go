package repository

import (
	"jasarumah-backend/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListForUser(userID uint64, isRead *bool, page, limit int) ([]models.Notification, int64, error)
	ListForMitra(mitraID uint64, isRead *bool, page, limit int) ([]models.Notification, int64, error)
	MarkReadForUser(id, userID uint64) error
	MarkReadForMitra(id, mitraID uint64) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) ListForUser(userID uint64, isRead *bool, page, limit int) ([]models.Notification, int64, error) {
	return r.list(r.db.Where("user_id = ?", userID), isRead, page, limit)
}

func (r *notificationRepository) ListForMitra(mitraID uint64, isRead *bool, page, limit int) ([]models.Notification, int64, error) {
	return r.list(r.db.Where("mitra_id = ?", mitraID), isRead, page, limit)
}

func (r *notificationRepository) list(query *gorm.DB, isRead *bool, page, limit int) ([]models.Notification, int64, error) {
	query = query.Model(&models.Notification{})
	if isRead != nil {
		query = query.Where("is_read = ?", *isRead)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&notifications).Error
	return notifications, total, err
}

// MarkRead hanya boleh oleh pemilik notifikasi; WHERE sekaligus jadi guard
func (r *notificationRepository) MarkReadForUser(id, userID uint64) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error
}

func (r *notificationRepository) MarkReadForMitra(id, mitraID uint64) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND mitra_id = ?", id, mitraID).
		Update("is_read", true).Error
}
