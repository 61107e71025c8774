package repository

import (
	"jasarumah-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint64) (*models.User, error)
	FindByPhone(phone string) (*models.User, error)
	FindByGoogleOrEmail(googleID, email string) (*models.User, error)
	SetGoogleID(id uint64, googleID string) error
	SetFCMToken(id uint64, token string) error
	UpdateFields(id uint64, fields map[string]interface{}) error
	List(search string, page, limit int) ([]models.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByGoogleOrEmail: dipakai login Google. Akun lama yang register manual
// pakai email yang sama ikut ketemu, nanti google_id-nya di-backfill.
func (r *userRepository) FindByGoogleOrEmail(googleID, email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("google_id = ? OR email = ?", googleID, email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SetGoogleID(id uint64, googleID string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("google_id", googleID).Error
}

func (r *userRepository) SetFCMToken(id uint64, token string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("fcm_token", token).Error
}

func (r *userRepository) UpdateFields(id uint64, fields map[string]interface{}) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *userRepository) List(search string, page, limit int) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR email LIKE ?", term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error
	return users, total, err
}
