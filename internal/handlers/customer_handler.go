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

type CustomerHandler struct {
	orders        *services.OrderService
	orderRepo     repository.OrderRepository
	serviceRepo   repository.ServiceRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository
}

func NewCustomerHandler(orders *services.OrderService, orderRepo repository.OrderRepository, serviceRepo repository.ServiceRepository, users repository.UserRepository, notifications repository.NotificationRepository) *CustomerHandler {
	return &CustomerHandler{
		orders:        orders,
		orderRepo:     orderRepo,
		serviceRepo:   serviceRepo,
		users:         users,
		notifications: notifications,
	}
}

// GetServices: katalog layanan aktif
func (h *CustomerHandler) GetServices(c *gin.Context) {
	services, err := h.serviceRepo.ListActive()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar layanan", gin.H{"services": services})
}

// GetServicesByType: katalog difilter per tipe
func (h *CustomerHandler) GetServicesByType(c *gin.Context) {
	serviceType := c.Param("type")
	if serviceType != models.ServiceTypeMassage &&
		serviceType != models.ServiceTypeCleaning &&
		serviceType != models.ServiceTypeACService {
		utils.APIResponse(c, http.StatusBadRequest, false, "Tipe layanan tidak valid", nil)
		return
	}

	services, err := h.serviceRepo.ListActiveByType(serviceType)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar layanan", gin.H{"services": services})
}

// CreateOrder membuat pesanan baru berstatus pending
func (h *CustomerHandler) CreateOrder(c *gin.Context) {
	userID := middleware.PrincipalID(c)

	var input models.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, err)
		return
	}

	order, err := h.orders.Create(userID, input)
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Layanan tidak ditemukan", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Pesanan berhasil dibuat", gin.H{"order": order})
}

// GetMyOrders: history pesanan customer, filter status opsional
func (h *CustomerHandler) GetMyOrders(c *gin.Context) {
	userID := middleware.PrincipalID(c)
	status := c.Query("status")
	page, limit := utils.GetPageParams(c)

	orders, total, err := h.orderRepo.ListByUser(userID, status, page, limit)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "History pesanan", gin.H{
		"orders":     orders,
		"pagination": utils.BuildPagination(page, limit, total),
	})
}

// GetOrderDetail: hanya order milik sendiri yang bisa dilihat
func (h *CustomerHandler) GetOrderDetail(c *gin.Context) {
	userID := middleware.PrincipalID(c)
	orderID := utils.StringToUint64(c.Param("id"))

	order, err := h.orderRepo.FindOwnedByUser(orderID, userID)
	if err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Pesanan tidak ditemukan", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Detail pesanan", gin.H{"order": order})
}

// CancelOrder membatalkan pesanan yang belum mencapai status terminal
func (h *CustomerHandler) CancelOrder(c *gin.Context) {
	userID := middleware.PrincipalID(c)
	orderID := utils.StringToUint64(c.Param("id"))

	err := h.orders.Cancel(orderID, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.APIResponse(c, http.StatusNotFound, false, "Pesanan tidak ditemukan", nil)
		case errors.Is(err, services.ErrCannotCancel):
			utils.APIResponse(c, http.StatusBadRequest, false, "Pesanan tidak bisa dibatalkan", nil)
		default:
			utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		}
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Pesanan berhasil dibatalkan", nil)
}

// UpdateProfile: partial update, hanya field yang dikirim yang diubah
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.PrincipalID(c)

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

	if err := h.users.UpdateFields(userID, fields); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Profil berhasil diupdate", nil)
}

// GetNotifications: notifikasi milik sendiri, filter is_read opsional
func (h *CustomerHandler) GetNotifications(c *gin.Context) {
	userID := middleware.PrincipalID(c)
	isRead := utils.ParseBoolQuery(c.Query("is_read"))
	page, limit := utils.GetPageParams(c)

	notifications, total, err := h.notifications.ListForUser(userID, isRead, page, limit)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Daftar notifikasi", gin.H{
		"notifications": notifications,
		"pagination":    utils.BuildPagination(page, limit, total),
	})
}

func (h *CustomerHandler) MarkNotificationRead(c *gin.Context) {
	userID := middleware.PrincipalID(c)
	notifID := utils.StringToUint64(c.Param("id"))

	if err := h.notifications.MarkReadForUser(notifID, userID); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Notifikasi ditandai sebagai dibaca", nil)
}

// profileUpdateFields menyusun map update dari field yang dikirim saja.
// Dipakai customer dan mitra (bentuk inputnya sama).
func profileUpdateFields(input models.UpdateProfileInput) map[string]interface{} {
	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	return fields
}
