package handlers

import (
	"errors"
	"net/http"

	"jasarumah-backend/internal/middleware"
	"jasarumah-backend/internal/models"
	"jasarumah-backend/internal/repository"
	"jasarumah-backend/internal/services"
	"jasarumah-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type MitraHandler struct {
	orders        *services.OrderService
	orderRepo     repository.OrderRepository
	mitra         repository.MitraRepository
	notifications repository.NotificationRepository
}

func NewMitraHandler(orders *services.OrderService, orderRepo repository.OrderRepository, mitra repository.MitraRepository, notifications repository.NotificationRepository) *MitraHandler {
	return &MitraHandler{
		orders:        orders,
		orderRepo:     orderRepo,
		mitra:         mitra,
		notifications: notifications,
	}
}

// GetAvailableOrders: job pending tanpa mitra yang tipenya cocok,
// paling lama duluan (siapa cepat dia dapat)
func (h *MitraHandler) GetAvailableOrders(c *gin.Context) {
	mitraID := middleware.PrincipalID(c)

	mitra, err := h.mitra.FindByID(mitraID)
	if err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Data mitra tidak ditemukan", nil)
		return
	}

	orders, err := h.orderRepo.ListAvailable(mitra.ServiceType)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Daftar pesanan tersedia", gin.H{"orders": orders})
}

// GetMyOrders: pesanan yang sudah diambil mitra ini
func (h *MitraHandler) GetMyOrders(c *gin.Context) {
	mitraID := middleware.PrincipalID(c)
	status := c.Query("status")
	page, limit := utils.GetPageParams(c)

	orders, total, err := h.orderRepo.ListByMitra(mitraID, status, page, limit)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Daftar pesanan saya", gin.H{
		"orders":     orders,
		"pagination": utils.BuildPagination(page, limit, total),
	})
}

func (h *MitraHandler) GetOrderDetail(c *gin.Context) {
	mitraID := middleware.PrincipalID(c)
	orderID := utils.StringToUint64(c.Param("id"))

	order, err := h.orderRepo.FindOwnedByMitra(orderID, mitraID)
	if err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Pesanan tidak ditemukan", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Detail pesanan", gin.H{"order": order})
}

// AcceptOrder: ambil pesanan. Kalah race = 404 yang sama dengan
// "tidak ditemukan" (kontrak lama menggabungkan keduanya).
func (h *MitraHandler) AcceptOrder(c *gin.Context) {
	mitraID := middleware.PrincipalID(c)
	orderID := utils.StringToUint64(c.Param("id"))

	order, err := h.orders.Accept(orderID, mitraID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrAlreadyTaken):
			utils.APIResponse(c, http.StatusNotFound, false, "Pesanan tidak ditemukan atau sudah diambil mitra lain", nil)
		case errors.Is(err, services.ErrWrongServiceType):
			utils.APIResponse(c, http.StatusBadRequest, false, "Tipe layanan tidak sesuai dengan keahlian mitra", nil)
		case errors.Is(err, services.ErrMitraNotFound):
			utils.APIResponse(c, http.StatusNotFound, false, "Data mitra tidak ditemukan", nil)
		default:
			utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		}
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Pesanan berhasil diambil", gin.H{"order": order})
}

// RejectOrder: tolak pesanan pending. Body opsional {reason}.
func (h *MitraHandler) RejectOrder(c *gin.Context) {
	mitraID := middleware.PrincipalID(c)
	orderID := utils.StringToUint64(c.Param("id"))

	// Body boleh kosong; semua field opsional
	var input models.RejectOrderInput
	_ = c.ShouldBindJSON(&input)

	err := h.orders.Reject(orderID, mitraID, input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrAlreadyTaken):
			utils.APIResponse(c, http.StatusNotFound, false, "Pesanan tidak ditemukan atau sudah diambil mitra lain", nil)
		default:
			utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		}
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Pesanan berhasil ditolak", nil)
}

// StartOrder: mulai layanan (accepted -> in_progress)
func (h *MitraHandler) StartOrder(c *gin.Context) {
	mitraID := middleware.PrincipalID(c)
	orderID := utils.StringToUint64(c.Param("id"))

	if err := h.orders.Start(orderID, mitraID); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Pesanan tidak ditemukan atau belum diterima", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Layanan dimulai", nil)
}

// CompleteOrder: selesaikan layanan (in_progress -> completed)
func (h *MitraHandler) CompleteOrder(c *gin.Context) {
	mitraID := middleware.PrincipalID(c)
	orderID := utils.StringToUint64(c.Param("id"))

	var input models.CompleteOrderInput
	_ = c.ShouldBindJSON(&input)

	if err := h.orders.Complete(orderID, mitraID, input.Notes); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Pesanan tidak ditemukan atau belum dimulai", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Layanan berhasil diselesaikan", nil)
}

// UpdateProfile: partial update profil mitra
func (h *MitraHandler) UpdateProfile(c *gin.Context) {
	mitraID := middleware.PrincipalID(c)

	var input models.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, err)
		return
	}

	fields := profileUpdateFields(input)
	if len(fields) == 0 {
		utils.APIResponse(c, http.StatusBadRequest, false, "Tidak ada data yang diupdate", nil)
		return
	}

	if err := h.mitra.UpdateFields(mitraID, fields); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Profil berhasil diupdate", nil)
}

// GetStats: ringkasan performa mitra
func (h *MitraHandler) GetStats(c *gin.Context) {
	mitraID := middleware.PrincipalID(c)

	stats, err := h.orderRepo.StatsByMitra(mitraID)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Statistik mitra", stats)
}

func (h *MitraHandler) GetNotifications(c *gin.Context) {
	mitraID := middleware.PrincipalID(c)
	isRead := utils.ParseBoolQuery(c.Query("is_read"))
	page, limit := utils.GetPageParams(c)

	notifications, total, err := h.notifications.ListForMitra(mitraID, isRead, page, limit)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Daftar notifikasi", gin.H{
		"notifications": notifications,
		"pagination":    utils.BuildPagination(page, limit, total),
	})
}

func (h *MitraHandler) MarkNotificationRead(c *gin.Context) {
	mitraID := middleware.PrincipalID(c)
	notifID := utils.StringToUint64(c.Param("id"))

	if err := h.notifications.MarkReadForMitra(notifID, mitraID); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Notifikasi ditandai sebagai dibaca", nil)
}
