package services

import (
	"errors"
	"fmt"

	"jasarumah-backend/internal/models"
	"jasarumah-backend/internal/repository"

	"gorm.io/gorm"
)

// Notifier: efek samping notifikasi dari transisi order.
// Best-effort, tidak pernah return error ke pemanggil.
type Notifier interface {
	NotifyUser(userID uint64, title, message, notifType string, orderID *uint64)
	NotifyMitra(mitraID uint64, title, message, notifType string, orderID *uint64)
}

// OrderService memegang state machine order dan guard per-role.
// Semua mutasi status lewat sini, tidak pernah langsung dari handler.
type OrderService struct {
	orders   repository.OrderRepository
	services repository.ServiceRepository
	mitra    repository.MitraRepository
	notifier Notifier
}

func NewOrderService(orders repository.OrderRepository, services repository.ServiceRepository, mitra repository.MitraRepository, notifier Notifier) *OrderService {
	return &OrderService{
		orders:   orders,
		services: services,
		mitra:    mitra,
		notifier: notifier,
	}
}

// Create membuat order pending milik customer. Harga layanan
// di-SNAPSHOT ke total_price; perubahan katalog setelahnya tidak
// mempengaruhi order ini.
func (s *OrderService) Create(userID uint64, input models.CreateOrderInput) (*models.Order, error) {
	service, err := s.services.FindActiveByID(input.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	order := &models.Order{
		UserID:        userID,
		ServiceID:     service.ID,
		Address:       input.Address,
		ScheduledDate: input.ScheduledDate,
		ScheduledTime: input.ScheduledTime,
		TotalPrice:    service.BasePrice,
		Status:        models.OrderStatusPending,
		Notes:         input.Notes,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}

	order.Service = *service
	return order, nil
}

// Accept: mitra mengambil order pending yang belum punya mitra.
// First-writer-wins: guard + update adalah SATU conditional UPDATE di
// repository, jadi dua accept bersamaan tidak mungkin dua-duanya sukses.
func (s *OrderService) Accept(orderID, mitraID uint64) (*models.Order, error) {
	mitra, err := s.mitra.FindByID(mitraID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMitraNotFound
		}
		return nil, err
	}

	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.MitraID != nil || order.Status != models.OrderStatusPending {
		return nil, ErrAlreadyTaken
	}

	// Cek kecocokan keahlian SEBELUM mencoba klaim
	if order.Service.Type != mitra.ServiceType {
		return nil, ErrWrongServiceType
	}

	claimed, err := s.orders.ClaimPending(orderID, mitraID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// Kalah race: ada mitra lain yang keburu klaim
		return nil, ErrAlreadyTaken
	}

	title, message := StatusNotification(models.OrderStatusAccepted)
	s.notifier.NotifyUser(order.UserID, title, message, models.NotificationTypeOrderStatus, &orderID)

	return s.orders.FindByID(orderID)
}

// Reject: mitra menolak order pending yang belum diambil siapa pun.
// Guard sama dengan Accept (mitra_id IS NULL + pending).
func (s *OrderService) Reject(orderID, mitraID uint64, reason string) error {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if order.MitraID != nil || order.Status != models.OrderStatusPending {
		return ErrAlreadyTaken
	}

	rejected, err := s.orders.RejectPending(orderID)
	if err != nil {
		return err
	}
	if !rejected {
		return ErrAlreadyTaken
	}

	title, message := StatusNotification(models.OrderStatusRejected)
	if reason != "" {
		message = fmt.Sprintf("%s\nAlasan: %s", message, reason)
	}
	s.notifier.NotifyUser(order.UserID, title, message, models.NotificationTypeOrderStatus, &orderID)

	return nil
}

// Start: hanya mitra yang ter-assign yang boleh memulai, dan hanya
// dari status accepted.
func (s *OrderService) Start(orderID, mitraID uint64) error {
	started, err := s.orders.StartAccepted(orderID, mitraID)
	if err != nil {
		return err
	}
	if !started {
		return ErrOrderNotFound
	}

	order, err := s.orders.FindOwnedByMitra(orderID, mitraID)
	if err == nil {
		title, message := StatusNotification(models.OrderStatusInProgress)
		s.notifier.NotifyUser(order.UserID, title, message, models.NotificationTypeOrderStatus, &orderID)
	}

	return nil
}

// Complete: hanya mitra yang ter-assign, hanya dari in_progress.
// Notes baru di-APPEND ke notes lama (newline), tidak menimpa.
func (s *OrderService) Complete(orderID, mitraID uint64, notes string) error {
	completed, err := s.orders.CompleteInProgress(orderID, mitraID, notes)
	if err != nil {
		return err
	}
	if !completed {
		return ErrOrderNotFound
	}

	order, err := s.orders.FindOwnedByMitra(orderID, mitraID)
	if err == nil {
		title, message := StatusNotification(models.OrderStatusCompleted)
		s.notifier.NotifyUser(order.UserID, title, message, models.NotificationTypeOrderStatus, &orderID)
	}

	return nil
}

// Cancel: customer pemilik membatalkan order yang belum mencapai
// status terminal. completed/cancelled/rejected tidak bisa dibatalkan.
func (s *OrderService) Cancel(orderID, userID uint64) error {
	order, err := s.orders.FindOwnedByUser(orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if models.IsTerminalStatus(order.Status) {
		return ErrCannotCancel
	}

	cancelled, err := s.orders.CancelActive(orderID, userID)
	if err != nil {
		return err
	}
	if !cancelled {
		// Race dengan transisi lain; status sudah bergeser ke terminal
		return ErrCannotCancel
	}

	// Kabari mitra yang sudah terlanjur pegang order ini
	if order.MitraID != nil {
		s.notifier.NotifyMitra(*order.MitraID, "Pesanan Dibatalkan",
			fmt.Sprintf("Pesanan #%d telah dibatalkan oleh customer", orderID),
			models.NotificationTypeOrderStatus, &orderID)
	}

	return nil
}
