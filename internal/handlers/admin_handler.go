package handlers

import (
	"net/http"
	"time"

	"jasarumah-backend/internal/models"
	"jasarumah-backend/internal/repository"
	"jasarumah-backend/internal/services"
	"jasarumah-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	users       repository.UserRepository
	mitra       repository.MitraRepository
	orderRepo   repository.OrderRepository
	serviceRepo repository.ServiceRepository
	reports     repository.ReportRepository
	notifier    services.Notifier
}

func NewAdminHandler(users repository.UserRepository, mitra repository.MitraRepository, orderRepo repository.OrderRepository, serviceRepo repository.ServiceRepository, reports repository.ReportRepository, notifier services.Notifier) *AdminHandler {
	return &AdminHandler{
		users:       users,
		mitra:       mitra,
		orderRepo:   orderRepo,
		serviceRepo: serviceRepo,
		reports:     reports,
		notifier:    notifier,
	}
}

// GetUsers: semua customer, search substring di nama/HP/email
func (h *AdminHandler) GetUsers(c *gin.Context) {
	search := c.Query("search")
	page, limit := utils.GetPageParams(c)

	users, total, err := h.users.List(search, page, limit)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Data semua customer", gin.H{
		"users":      users,
		"pagination": utils.BuildPagination(page, limit, total),
	})
}

// GetMitra: semua mitra; filter search, service_type, is_verified (konjungtif)
func (h *AdminHandler) GetMitra(c *gin.Context) {
	search := c.Query("search")
	serviceType := c.Query("service_type")
	isVerified := utils.ParseBoolQuery(c.Query("is_verified"))
	page, limit := utils.GetPageParams(c)

	mitra, total, err := h.mitra.List(search, serviceType, isVerified, page, limit)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Data semua mitra", gin.H{
		"mitra":      mitra,
		"pagination": utils.BuildPagination(page, limit, total),
	})
}

// VerifyMitra: gerbang verifikasi. Mitra belum verified tidak bisa login.
func (h *AdminHandler) VerifyMitra(c *gin.Context) {
	mitraID := utils.StringToUint64(c.Param("id"))

	var input models.VerifyMitraInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, err)
		return
	}

	if _, err := h.mitra.FindByID(mitraID); err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Mitra tidak ditemukan", nil)
		return
	}

	if err := h.mitra.SetVerified(mitraID, *input.IsVerified); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	if *input.IsVerified {
		h.notifier.NotifyMitra(mitraID, "Akun Diverifikasi",
			"Selamat! Akun mitra Anda telah diverifikasi. Anda sekarang dapat login dan menerima pesanan.",
			models.NotificationTypeGeneral, nil)
		utils.APIResponse(c, http.StatusOK, true, "Mitra berhasil diverifikasi", nil)
	} else {
		h.notifier.NotifyMitra(mitraID, "Verifikasi Ditolak",
			"Akun mitra Anda belum diverifikasi. Silakan hubungi admin untuk informasi lebih lanjut.",
			models.NotificationTypeGeneral, nil)
		utils.APIResponse(c, http.StatusOK, true, "Mitra berhasil ditolak", nil)
	}
}

// UpdateMitraStatus: aktif/nonaktifkan mitra
func (h *AdminHandler) UpdateMitraStatus(c *gin.Context) {
	mitraID := utils.StringToUint64(c.Param("id"))

	var input models.MitraStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, err)
		return
	}

	if _, err := h.mitra.FindByID(mitraID); err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Mitra tidak ditemukan", nil)
		return
	}

	if err := h.mitra.SetActive(mitraID, *input.IsActive); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	if *input.IsActive {
		h.notifier.NotifyMitra(mitraID, "Akun Diaktifkan",
			"Akun mitra Anda telah diaktifkan kembali.", models.NotificationTypeGeneral, nil)
		utils.APIResponse(c, http.StatusOK, true, "Mitra berhasil diaktifkan", nil)
	} else {
		h.notifier.NotifyMitra(mitraID, "Akun Dinonaktifkan",
			"Akun mitra Anda telah dinonaktifkan. Silakan hubungi admin untuk informasi lebih lanjut.",
			models.NotificationTypeGeneral, nil)
		utils.APIResponse(c, http.StatusOK, true, "Mitra berhasil dinonaktifkan", nil)
	}
}

// GetOrders: semua pesanan; filter status, tipe layanan, rentang tanggal
func (h *AdminHandler) GetOrders(c *gin.Context) {
	filter := repository.OrderListFilter{
		Status:      c.Query("status"),
		ServiceType: c.Query("service_type"),
		DateFrom:    c.Query("date_from"),
		DateTo:      c.Query("date_to"),
	}
	page, limit := utils.GetPageParams(c)

	orders, total, err := h.orderRepo.ListAll(filter, page, limit)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Data semua pesanan", gin.H{
		"orders":     orders,
		"pagination": utils.BuildPagination(page, limit, total),
	})
}

func (h *AdminHandler) GetOrderDetail(c *gin.Context) {
	orderID := utils.StringToUint64(c.Param("id"))

	order, err := h.orderRepo.FindByID(orderID)
	if err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Pesanan tidak ditemukan", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Detail pesanan", gin.H{"order": order})
}

// GetServices: seluruh katalog termasuk yang nonaktif
func (h *AdminHandler) GetServices(c *gin.Context) {
	catalog, err := h.serviceRepo.ListAll()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar layanan", gin.H{"services": catalog})
}

func (h *AdminHandler) CreateService(c *gin.Context) {
	var input models.CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, err)
		return
	}

	service := models.Service{
		Name:      input.Name,
		Type:      input.Type,
		BasePrice: input.BasePrice,
		IsActive:  true,
	}
	if input.Description != "" {
		service.Description = &input.Description
	}

	if err := h.serviceRepo.Create(&service); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Layanan berhasil ditambahkan", gin.H{"service": service})
}

// UpdateService: partial update katalog
func (h *AdminHandler) UpdateService(c *gin.Context) {
	serviceID := uint(utils.StringToUint64(c.Param("id")))

	var input models.UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, err)
		return
	}

	if _, err := h.serviceRepo.FindByID(serviceID); err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "Layanan tidak ditemukan", nil)
		return
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Type != nil {
		fields["type"] = *input.Type
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.BasePrice != nil {
		fields["base_price"] = *input.BasePrice
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}

	if len(fields) == 0 {
		utils.APIResponse(c, http.StatusBadRequest, false, "Tidak ada data yang diupdate", nil)
		return
	}

	if err := h.serviceRepo.UpdateFields(serviceID, fields); err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Layanan berhasil diupdate", nil)
}

// DailyReport: rekap transaksi harian (?date=YYYY-MM-DD, default hari ini)
func (h *AdminHandler) DailyReport(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	report, err := h.reports.Daily(date)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Laporan harian", report)
}

// MonthlyReport: rekap bulanan (?month=&year=, default bulan berjalan)
func (h *AdminHandler) MonthlyReport(c *gin.Context) {
	now := time.Now()
	month := int(utils.StringToUint64(c.Query("month")))
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	year := int(utils.StringToUint64(c.Query("year")))
	if year == 0 {
		year = now.Year()
	}

	report, err := h.reports.Monthly(month, year)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Laporan bulanan", report)
}

// Dashboard: ringkasan angka untuk halaman utama admin
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.reports.Dashboard()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Data dashboard admin", stats)
}
