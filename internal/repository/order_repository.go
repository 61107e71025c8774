package repository

import (
	"jasarumah-backend/internal/models"

	"gorm.io/gorm"
)

// Filter list order untuk admin. String kosong = tidak difilter.
type OrderListFilter struct {
	Status      string
	ServiceType string
	DateFrom    string // YYYY-MM-DD
	DateTo      string // YYYY-MM-DD
}

type MitraStats struct {
	TotalOrders     int64   `json:"total_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	TotalEarnings   float64 `json:"total_earnings"`
	MonthlyOrders   int64   `json:"monthly_orders"`
}

type OrderRepository interface {
	Create(order *models.Order) error
	FindByID(id uint64) (*models.Order, error)
	FindOwnedByUser(id, userID uint64) (*models.Order, error)
	FindOwnedByMitra(id, mitraID uint64) (*models.Order, error)
	ListByUser(userID uint64, status string, page, limit int) ([]models.Order, int64, error)
	ListByMitra(mitraID uint64, status string, page, limit int) ([]models.Order, int64, error)
	ListAvailable(serviceType string) ([]models.Order, error)
	ListAll(filter OrderListFilter, page, limit int) ([]models.Order, int64, error)

	// Transisi status. Semuanya SATU conditional UPDATE: guard status (dan
	// kepemilikan) ada di klausa WHERE, return false kalau tidak ada baris
	// yang kena (order tidak ada, bukan miliknya, atau kalah race).
	ClaimPending(id, mitraID uint64) (bool, error)
	RejectPending(id uint64) (bool, error)
	StartAccepted(id, mitraID uint64) (bool, error)
	CompleteInProgress(id, mitraID uint64, notes string) (bool, error)
	CancelActive(id, userID uint64) (bool, error)

	StatsByMitra(mitraID uint64) (*MitraStats, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) FindByID(id uint64) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Service").Preload("User").Preload("Mitra").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindOwnedByUser(id, userID uint64) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Service").Preload("Mitra").
		Where("id = ? AND user_id = ?", id, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindOwnedByMitra(id, mitraID uint64) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Service").Preload("User").
		Where("id = ? AND mitra_id = ?", id, mitraID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(userID uint64, status string, page, limit int) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("Service").Preload("Mitra").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepository) ListByMitra(mitraID uint64, status string, page, limit int) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("mitra_id = ?", mitraID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("Service").Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	return orders, total, err
}

// ListAvailable: pesanan pending tanpa mitra yang tipenya cocok,
// diurutkan dari yang paling lama (siapa cepat dia dapat)
func (r *orderRepository) ListAvailable(serviceType string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Service").Preload("User").
		Joins("JOIN services ON services.id = orders.service_id").
		Where("services.type = ? AND orders.mitra_id IS NULL AND orders.status = ?",
			serviceType, models.OrderStatusPending).
		Order("orders.created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListAll(filter OrderListFilter, page, limit int) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).
		Joins("JOIN services ON services.id = orders.service_id")

	if filter.Status != "" {
		query = query.Where("orders.status = ?", filter.Status)
	}
	if filter.ServiceType != "" {
		query = query.Where("services.type = ?", filter.ServiceType)
	}
	if filter.DateFrom != "" {
		query = query.Where("DATE(orders.created_at) >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("DATE(orders.created_at) <= ?", filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("Service").Preload("User").Preload("Mitra").
		Order("orders.created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error
	return orders, total, err
}

// ClaimPending adalah compare-and-set perebutan order: dua mitra yang
// accept bersamaan tidak mungkin dua-duanya dapat baris ter-update.
func (r *orderRepository) ClaimPending(id, mitraID uint64) (bool, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND mitra_id IS NULL AND status = ?", id, models.OrderStatusPending).
		Updates(map[string]interface{}{
			"mitra_id": mitraID,
			"status":   models.OrderStatusAccepted,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *orderRepository) RejectPending(id uint64) (bool, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND mitra_id IS NULL AND status = ?", id, models.OrderStatusPending).
		Update("status", models.OrderStatusRejected)
	return res.RowsAffected > 0, res.Error
}

func (r *orderRepository) StartAccepted(id, mitraID uint64) (bool, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND mitra_id = ? AND status = ?", id, mitraID, models.OrderStatusAccepted).
		Update("status", models.OrderStatusInProgress)
	return res.RowsAffected > 0, res.Error
}

func (r *orderRepository) CompleteInProgress(id, mitraID uint64, notes string) (bool, error) {
	updates := map[string]interface{}{"status": models.OrderStatusCompleted}
	if notes != "" {
		// Append, bukan overwrite: catatan lama customer tetap utuh
		updates["notes"] = gorm.Expr("CONCAT(IFNULL(notes, ''), '\n', ?)", notes)
	}

	res := r.db.Model(&models.Order{}).
		Where("id = ? AND mitra_id = ? AND status = ?", id, mitraID, models.OrderStatusInProgress).
		Updates(updates)
	return res.RowsAffected > 0, res.Error
}

func (r *orderRepository) CancelActive(id, userID uint64) (bool, error) {
	active := []string{models.OrderStatusPending, models.OrderStatusAccepted, models.OrderStatusInProgress}
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND user_id = ? AND status IN ?", id, userID, active).
		Update("status", models.OrderStatusCancelled)
	return res.RowsAffected > 0, res.Error
}

func (r *orderRepository) StatsByMitra(mitraID uint64) (*MitraStats, error) {
	stats := &MitraStats{}

	if err := r.db.Model(&models.Order{}).
		Where("mitra_id = ?", mitraID).
		Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Order{}).
		Where("mitra_id = ? AND status = ?", mitraID, models.OrderStatusCompleted).
		Count(&stats.CompletedOrders).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Order{}).
		Where("mitra_id = ? AND status = ?", mitraID, models.OrderStatusCompleted).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalEarnings).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Order{}).
		Where("mitra_id = ? AND MONTH(created_at) = MONTH(CURRENT_DATE()) AND YEAR(created_at) = YEAR(CURRENT_DATE())", mitraID).
		Count(&stats.MonthlyOrders).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
