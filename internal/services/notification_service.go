package services

import (
	"log"
	"strconv"

	"jasarumah-backend/internal/models"
	"jasarumah-backend/internal/repository"
	"jasarumah-backend/pkg/utils"
)

// StatusNotification memetakan status order ke judul + isi notifikasi customer
func StatusNotification(status string) (title, message string) {
	switch status {
	case models.OrderStatusAccepted:
		return "Pesanan Diterima", "Pesanan Anda telah diterima oleh mitra. Mitra akan menghubungi Anda segera."
	case models.OrderStatusRejected:
		return "Pesanan Ditolak", "Maaf, pesanan Anda ditolak oleh mitra. Silakan coba mitra lain."
	case models.OrderStatusInProgress:
		return "Layanan Dimulai", "Mitra telah memulai layanan Anda."
	case models.OrderStatusCompleted:
		return "Layanan Selesai", "Layanan Anda telah selesai. Terima kasih telah menggunakan layanan kami."
	case models.OrderStatusCancelled:
		return "Pesanan Dibatalkan", "Pesanan Anda telah dibatalkan."
	default:
		return "Update Pesanan", "Status pesanan Anda berubah."
	}
}

// NotificationService menyimpan notifikasi ke DB dan (kalau penerima
// punya FCM token) mendorong push. Dua-duanya fire-and-forget: gagal
// cuma dilog, tidak pernah menggagalkan transisi order yang memicunya.
type NotificationService struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
	mitra         repository.MitraRepository
}

func NewNotificationService(notifications repository.NotificationRepository, users repository.UserRepository, mitra repository.MitraRepository) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		mitra:         mitra,
	}
}

func (s *NotificationService) NotifyUser(userID uint64, title, message, notifType string, orderID *uint64) {
	n := &models.Notification{
		UserID:  &userID,
		OrderID: orderID,
		Title:   title,
		Message: message,
		Type:    notifType,
	}
	if err := s.notifications.Create(n); err != nil {
		log.Printf("Gagal simpan notifikasi user %d: %v", userID, err)
		return
	}

	if user, err := s.users.FindByID(userID); err == nil && user.FCMToken != nil {
		utils.SendPush(*user.FCMToken, title, message, pushData(notifType, orderID))
	}
}

func (s *NotificationService) NotifyMitra(mitraID uint64, title, message, notifType string, orderID *uint64) {
	n := &models.Notification{
		MitraID: &mitraID,
		OrderID: orderID,
		Title:   title,
		Message: message,
		Type:    notifType,
	}
	if err := s.notifications.Create(n); err != nil {
		log.Printf("Gagal simpan notifikasi mitra %d: %v", mitraID, err)
		return
	}

	if mitra, err := s.mitra.FindByID(mitraID); err == nil && mitra.FCMToken != nil {
		utils.SendPush(*mitra.FCMToken, title, message, pushData(notifType, orderID))
	}
}

func pushData(notifType string, orderID *uint64) map[string]string {
	data := map[string]string{"type": notifType}
	if orderID != nil {
		data["order_id"] = strconv.FormatUint(*orderID, 10)
	}
	return data
}
