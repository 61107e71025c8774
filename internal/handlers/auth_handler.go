package handlers

import (
	"context"
	"errors"
	"net/http"

	"jasarumah-backend/internal/middleware"
	"jasarumah-backend/internal/models"
	"jasarumah-backend/internal/repository"
	"jasarumah-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	users  repository.UserRepository
	mitra  repository.MitraRepository
	admins repository.AdminRepository

	// Bisa diganti di test biar tidak perlu call ke Google beneran
	verifyGoogle func(ctx context.Context, token string) (*utils.GoogleUser, error)
}

func NewAuthHandler(users repository.UserRepository, mitra repository.MitraRepository, admins repository.AdminRepository) *AuthHandler {
	return &AuthHandler{
		users:        users,
		mitra:        mitra,
		admins:       admins,
		verifyGoogle: utils.VerifyGoogleToken,
	}
}

// Register customer baru
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, err)
		return
	}

	// Cek apakah nomor HP sudah terdaftar
	if _, err := h.users.FindByPhone(input.Phone); err == nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Nomor HP sudah terdaftar", nil)
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memproses password", nil)
		return
	}

	user := models.User{
		Name:         input.Name,
		Phone:        &input.Phone,
		PasswordHash: hash,
	}
	if input.Email != "" {
		user.Email = &input.Email
	}

	if err := h.users.Create(&user); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Nomor HP sudah terdaftar", nil)
		return
	}

	token, err := utils.GenerateToken(user.ID, utils.RoleCustomer)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Registrasi berhasil", gin.H{
		"user":  user,
		"token": token,
	})
}

// Login customer via nomor HP + password
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, err)
		return
	}

	user, err := h.users.FindByPhone(input.Phone)
	if err != nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Nomor HP atau password salah", nil)
		return
	}

	if !utils.CheckPassword(input.Password, user.PasswordHash) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Nomor HP atau password salah", nil)
		return
	}

	// Simpan token FCM terbaru dari device yang login
	if input.FCMToken != "" {
		h.users.SetFCMToken(user.ID, input.FCMToken)
	}

	token, err := utils.GenerateToken(user.ID, utils.RoleCustomer)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login berhasil", gin.H{
		"user":  user,
		"token": token,
	})
}

// GoogleLogin: verifikasi ID token Google, find-or-create customer.
// Akun lama dengan email yang sama di-link (backfill google_id).
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var input models.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, err)
		return
	}

	googleUser, err := h.verifyGoogle(c.Request.Context(), input.Token)
	if err != nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Token Google tidak valid", nil)
		return
	}

	user, err := h.users.FindByGoogleOrEmail(googleUser.GoogleID, googleUser.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
			return
		}
		// User baru: buat akun tanpa password lokal
		user = &models.User{
			Name:     googleUser.Name,
			GoogleID: &googleUser.GoogleID,
		}
		if googleUser.Email != "" {
			user.Email = &googleUser.Email
		}
		if err := h.users.Create(user); err != nil {
			utils.APIResponse(c, http.StatusInternalServerError, false, "Terjadi kesalahan server", nil)
			return
		}
	} else if user.GoogleID == nil {
		if err := h.users.SetGoogleID(user.ID, googleUser.GoogleID); err == nil {
			user.GoogleID = &googleUser.GoogleID
		}
	}

	token, err := utils.GenerateToken(user.ID, utils.RoleCustomer)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login Google berhasil", gin.H{
		"user":  user,
		"token": token,
	})
}

// MitraRegister: akun mitra baru, belum bisa login sampai diverifikasi admin
func (h *AuthHandler) MitraRegister(c *gin.Context) {
	var input models.MitraRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, err)
		return
	}

	if _, err := h.mitra.FindByPhone(input.Phone); err == nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Nomor HP sudah terdaftar", nil)
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal memproses password", nil)
		return
	}

	mitra := models.Mitra{
		Name:         input.Name,
		Phone:        input.Phone,
		PasswordHash: hash,
		Address:      input.Address,
		ServiceType:  input.ServiceType,
		IsVerified:   false,
		IsActive:     true,
	}
	if input.Email != "" {
		mitra.Email = &input.Email
	}

	if err := h.mitra.Create(&mitra); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Nomor HP sudah terdaftar", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Registrasi mitra berhasil. Menunggu verifikasi admin.", gin.H{
		"mitra": mitra,
	})
}

// MitraLogin. Urutan cek PENTING: verifikasi & status aktif dicek
// duluan, jadi mitra yang belum diverifikasi selalu 401 walaupun
// passwordnya benar.
func (h *AuthHandler) MitraLogin(c *gin.Context) {
	var input models.MitraLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, err)
		return
	}

	mitra, err := h.mitra.FindByPhone(input.Phone)
	if err != nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Nomor HP atau password salah", nil)
		return
	}

	if !mitra.IsVerified {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Akun mitra belum diverifikasi oleh admin", nil)
		return
	}

	if !mitra.IsActive {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Akun mitra tidak aktif", nil)
		return
	}

	if !utils.CheckPassword(input.Password, mitra.PasswordHash) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Nomor HP atau password salah", nil)
		return
	}

	if input.FCMToken != "" {
		h.mitra.SetFCMToken(mitra.ID, input.FCMToken)
	}

	token, err := utils.GenerateToken(mitra.ID, utils.RoleMitra)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login mitra berhasil", gin.H{
		"mitra": mitra,
		"token": token,
	})
}

// AdminLogin via username + password
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var input models.AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIValidationError(c, err)
		return
	}

	admin, err := h.admins.FindByUsername(input.Username)
	if err != nil {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Username atau password salah", nil)
		return
	}

	if !utils.CheckPassword(input.Password, admin.PasswordHash) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Username atau password salah", nil)
		return
	}

	token, err := utils.GenerateToken(admin.ID, utils.RoleAdmin)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Gagal generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login admin berhasil", gin.H{
		"admin": admin,
		"token": token,
	})
}

// Profile diroutekan per role dari claim token
func (h *AuthHandler) Profile(c *gin.Context) {
	id := middleware.PrincipalID(c)
	role, _ := c.Get(middleware.ContextRole)

	switch role {
	case utils.RoleCustomer:
		user, err := h.users.FindByID(id)
		if err != nil {
			utils.APIResponse(c, http.StatusNotFound, false, "User tidak ditemukan", nil)
			return
		}
		utils.APIResponse(c, http.StatusOK, true, "Profil customer", gin.H{"user": user})
	case utils.RoleMitra:
		mitra, err := h.mitra.FindByID(id)
		if err != nil {
			utils.APIResponse(c, http.StatusNotFound, false, "Mitra tidak ditemukan", nil)
			return
		}
		utils.APIResponse(c, http.StatusOK, true, "Profil mitra", gin.H{"mitra": mitra})
	case utils.RoleAdmin:
		admin, err := h.admins.FindByID(id)
		if err != nil {
			utils.APIResponse(c, http.StatusNotFound, false, "Admin tidak ditemukan", nil)
			return
		}
		utils.APIResponse(c, http.StatusOK, true, "Profil admin", gin.H{"admin": admin})
	default:
		utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak valid", nil)
	}
}
