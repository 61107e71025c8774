package repository

import (
	"jasarumah-backend/internal/models"

	"gorm.io/gorm"
)

type MitraRepository interface {
	Create(mitra *models.Mitra) error
	FindByID(id uint64) (*models.Mitra, error)
	FindByPhone(phone string) (*models.Mitra, error)
	SetVerified(id uint64, verified bool) error
	SetActive(id uint64, active bool) error
	SetFCMToken(id uint64, token string) error
	UpdateFields(id uint64, fields map[string]interface{}) error
	List(search, serviceType string, isVerified *bool, page, limit int) ([]models.Mitra, int64, error)
}

type mitraRepository struct {
	db *gorm.DB
}

func NewMitraRepository(db *gorm.DB) MitraRepository {
	return &mitraRepository{db: db}
}

func (r *mitraRepository) Create(mitra *models.Mitra) error {
	return r.db.Create(mitra).Error
}

func (r *mitraRepository) FindByID(id uint64) (*models.Mitra, error) {
	var mitra models.Mitra
	if err := r.db.First(&mitra, id).Error; err != nil {
		return nil, err
	}
	return &mitra, nil
}

func (r *mitraRepository) FindByPhone(phone string) (*models.Mitra, error) {
	var mitra models.Mitra
	if err := r.db.Where("phone = ?", phone).First(&mitra).Error; err != nil {
		return nil, err
	}
	return &mitra, nil
}

func (r *mitraRepository) SetVerified(id uint64, verified bool) error {
	return r.db.Model(&models.Mitra{}).Where("id = ?", id).Update("is_verified", verified).Error
}

func (r *mitraRepository) SetActive(id uint64, active bool) error {
	return r.db.Model(&models.Mitra{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *mitraRepository) SetFCMToken(id uint64, token string) error {
	return r.db.Model(&models.Mitra{}).Where("id = ?", id).Update("fcm_token", token).Error
}

func (r *mitraRepository) UpdateFields(id uint64, fields map[string]interface{}) error {
	return r.db.Model(&models.Mitra{}).Where("id = ?", id).Updates(fields).Error
}

func (r *mitraRepository) List(search, serviceType string, isVerified *bool, page, limit int) ([]models.Mitra, int64, error) {
	query := r.db.Model(&models.Mitra{})
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR email LIKE ?", term, term, term)
	}
	if serviceType != "" {
		query = query.Where("service_type = ?", serviceType)
	}
	if isVerified != nil {
		query = query.Where("is_verified = ?", *isVerified)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var mitra []models.Mitra
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&mitra).Error
	return mitra, total, err
}
