package repository

import (
	"jasarumah-backend/internal/models"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(service *models.Service) error
	FindByID(id uint) (*models.Service, error)
	FindActiveByID(id uint) (*models.Service, error)
	ListActive() ([]models.Service, error)
	ListActiveByType(serviceType string) ([]models.Service, error)
	ListAll() ([]models.Service, error)
	UpdateFields(id uint, fields map[string]interface{}) error
}

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *serviceRepository) FindByID(id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) FindActiveByID(id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) ListActive() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("is_active = ?", true).Order("type, name").Find(&services).Error
	return services, err
}

func (r *serviceRepository) ListActiveByType(serviceType string) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("type = ? AND is_active = ?", serviceType, true).
		Order("name").Find(&services).Error
	return services, err
}

func (r *serviceRepository) ListAll() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("type, name").Find(&services).Error
	return services, err
}

func (r *serviceRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Service{}).Where("id = ?", id).Updates(fields).Error
}
