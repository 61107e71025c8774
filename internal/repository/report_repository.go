package repository

import (
	"jasarumah-backend/internal/models"

	"gorm.io/gorm"
)

type ReportSummary struct {
	TotalOrders  int64   `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type ServiceReportRow struct {
	ServiceName string  `json:"service_name"`
	Type        string  `json:"type"`
	Count       int64   `json:"count"`
	Revenue     float64 `json:"revenue"`
}

type MitraReportRow struct {
	MitraName string  `json:"mitra_name"`
	Count     int64   `json:"count"`
	Revenue   float64 `json:"revenue"`
}

type DayReportRow struct {
	Day     int     `json:"day"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type DailyReport struct {
	Date            string             `json:"date"`
	Summary         ReportSummary      `json:"summary"`
	OrdersByStatus  []StatusCount      `json:"orders_by_status"`
	OrdersByService []ServiceReportRow `json:"orders_by_service"`
	OrdersByMitra   []MitraReportRow   `json:"orders_by_mitra"`
}

type MonthlyReport struct {
	Month       int              `json:"month"`
	Year        int              `json:"year"`
	Summary     ReportSummary    `json:"summary"`
	OrdersByDay []DayReportRow   `json:"orders_by_day"`
	TopMitra    []MitraReportRow `json:"top_mitra"`
}

type DashboardStats struct {
	TotalUsers      int64   `json:"total_users"`
	TotalMitra      int64   `json:"total_mitra"`
	TotalOrders     int64   `json:"total_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	OrdersToday     int64   `json:"orders_today"`
	PendingOrders   int64   `json:"pending_orders"`
	UnverifiedMitra int64   `json:"unverified_mitra"`
}

type ReportRepository interface {
	Daily(date string) (*DailyReport, error)
	Monthly(month, year int) (*MonthlyReport, error)
	Dashboard() (*DashboardStats, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Daily(date string) (*DailyReport, error) {
	report := &DailyReport{Date: date}

	if err := r.db.Model(&models.Order{}).
		Where("DATE(created_at) = ?", date).
		Count(&report.Summary.TotalOrders).Error; err != nil {
		return nil, err
	}

	// Revenue cuma dihitung dari order yang benar-benar selesai
	if err := r.db.Model(&models.Order{}).
		Where("DATE(created_at) = ? AND status = ?", date, models.OrderStatusCompleted).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&report.Summary.TotalRevenue).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Where("DATE(created_at) = ?", date).
		Group("status").
		Scan(&report.OrdersByStatus).Error; err != nil {
		return nil, err
	}

	if err := r.db.Raw(`
		SELECT s.name AS service_name, s.type, COUNT(*) AS count, COALESCE(SUM(o.total_price), 0) AS revenue
		FROM orders o
		JOIN services s ON o.service_id = s.id
		WHERE DATE(o.created_at) = ?
		GROUP BY s.id, s.name, s.type`, date).
		Scan(&report.OrdersByService).Error; err != nil {
		return nil, err
	}

	if err := r.db.Raw(`
		SELECT m.name AS mitra_name, COUNT(*) AS count, COALESCE(SUM(o.total_price), 0) AS revenue
		FROM orders o
		JOIN mitra m ON o.mitra_id = m.id
		WHERE DATE(o.created_at) = ? AND o.status = ?
		GROUP BY m.id, m.name`, date, models.OrderStatusCompleted).
		Scan(&report.OrdersByMitra).Error; err != nil {
		return nil, err
	}

	return report, nil
}

func (r *reportRepository) Monthly(month, year int) (*MonthlyReport, error) {
	report := &MonthlyReport{Month: month, Year: year}

	if err := r.db.Model(&models.Order{}).
		Where("MONTH(created_at) = ? AND YEAR(created_at) = ?", month, year).
		Count(&report.Summary.TotalOrders).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Order{}).
		Where("MONTH(created_at) = ? AND YEAR(created_at) = ? AND status = ?",
			month, year, models.OrderStatusCompleted).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&report.Summary.TotalRevenue).Error; err != nil {
		return nil, err
	}

	if err := r.db.Raw(`
		SELECT DAY(created_at) AS day, COUNT(*) AS count,
		       SUM(CASE WHEN status = ? THEN total_price ELSE 0 END) AS revenue
		FROM orders
		WHERE MONTH(created_at) = ? AND YEAR(created_at) = ?
		GROUP BY DAY(created_at)
		ORDER BY day`, models.OrderStatusCompleted, month, year).
		Scan(&report.OrdersByDay).Error; err != nil {
		return nil, err
	}

	if err := r.db.Raw(`
		SELECT m.name AS mitra_name, COUNT(*) AS count, COALESCE(SUM(o.total_price), 0) AS revenue
		FROM orders o
		JOIN mitra m ON o.mitra_id = m.id
		WHERE MONTH(o.created_at) = ? AND YEAR(o.created_at) = ? AND o.status = ?
		GROUP BY m.id, m.name
		ORDER BY revenue DESC
		LIMIT 10`, month, year, models.OrderStatusCompleted).
		Scan(&report.TopMitra).Error; err != nil {
		return nil, err
	}

	return report, nil
}

func (r *reportRepository) Dashboard() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := r.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Mitra{}).Count(&stats.TotalMitra).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusCompleted).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Order{}).
		Where("DATE(created_at) = CURDATE()").
		Count(&stats.OrdersToday).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Mitra{}).
		Where("is_verified = ?", false).
		Count(&stats.UnverifiedMitra).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
