package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jasarumah-backend/internal/models"
	"jasarumah-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ---- fakes in-memory untuk repo auth ----

type memUserRepo struct {
	nextID uint64
	users  map[uint64]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uint64]*models.User{}}
}

func (r *memUserRepo) Create(user *models.User) error {
	if user.Phone != nil {
		if _, err := r.FindByPhone(*user.Phone); err == nil {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) FindByID(id uint64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *memUserRepo) FindByPhone(phone string) (*models.User, error) {
	for _, u := range r.users {
		if u.Phone != nil && *u.Phone == phone {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) FindByGoogleOrEmail(googleID, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	if email != "" {
		for _, u := range r.users {
			if u.Email != nil && *u.Email == email {
				return u, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) SetGoogleID(id uint64, googleID string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.GoogleID = &googleID
	return nil
}

func (r *memUserRepo) SetFCMToken(id uint64, token string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.FCMToken = &token
	return nil
}

func (r *memUserRepo) UpdateFields(id uint64, fields map[string]interface{}) error { return nil }
func (r *memUserRepo) List(search string, page, limit int) ([]models.User, int64, error) {
	return nil, 0, nil
}

type memMitraRepo struct {
	nextID uint64
	mitra  map[uint64]*models.Mitra
}

func newMemMitraRepo() *memMitraRepo {
	return &memMitraRepo{mitra: map[uint64]*models.Mitra{}}
}

func (r *memMitraRepo) Create(m *models.Mitra) error {
	if _, err := r.FindByPhone(m.Phone); err == nil {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	m.ID = r.nextID
	r.mitra[m.ID] = m
	return nil
}

func (r *memMitraRepo) FindByID(id uint64) (*models.Mitra, error) {
	m, ok := r.mitra[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *memMitraRepo) FindByPhone(phone string) (*models.Mitra, error) {
	for _, m := range r.mitra {
		if m.Phone == phone {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memMitraRepo) SetVerified(id uint64, verified bool) error {
	m, ok := r.mitra[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.IsVerified = verified
	return nil
}

func (r *memMitraRepo) SetActive(id uint64, active bool) error {
	m, ok := r.mitra[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.IsActive = active
	return nil
}

func (r *memMitraRepo) SetFCMToken(id uint64, token string) error {
	m, ok := r.mitra[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.FCMToken = &token
	return nil
}

func (r *memMitraRepo) UpdateFields(id uint64, fields map[string]interface{}) error { return nil }
func (r *memMitraRepo) List(search, serviceType string, isVerified *bool, page, limit int) ([]models.Mitra, int64, error) {
	return nil, 0, nil
}

type memAdminRepo struct {
	admins map[uint64]*models.Admin
}

func (r *memAdminRepo) FindByID(id uint64) (*models.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *memAdminRepo) FindByUsername(username string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ---- fixture ----

type authFixture struct {
	router  *gin.Engine
	handler *AuthHandler
	users   *memUserRepo
	mitra   *memMitraRepo
	admins  *memAdminRepo
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newMemUserRepo()
	mitra := newMemMitraRepo()
	admins := &memAdminRepo{admins: map[uint64]*models.Admin{}}

	handler := NewAuthHandler(users, mitra, admins)

	r := gin.New()
	r.POST("/api/auth/register", handler.Register)
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/google", handler.GoogleLogin)
	r.POST("/api/auth/mitra/register", handler.MitraRegister)
	r.POST("/api/auth/mitra/login", handler.MitraLogin)
	r.POST("/api/auth/admin/login", handler.AdminLogin)

	return &authFixture{router: r, handler: handler, users: users, mitra: mitra, admins: admins}
}

func (f *authFixture) post(t *testing.T, path string, body interface{}) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func (f *authFixture) seedMitra(t *testing.T, phone, password string, verified, active bool) *models.Mitra {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	m := &models.Mitra{
		Name:         "Budi Santoso",
		Phone:        phone,
		PasswordHash: hash,
		Address:      "Jl. Kenanga No. 3",
		ServiceType:  models.ServiceTypeMassage,
		IsVerified:   verified,
		IsActive:     active,
	}
	require.NoError(t, f.mitra.Create(m))
	return m
}

// ---- tests ----

func TestRegister(t *testing.T) {
	f := newAuthFixture(t)

	w, resp := f.post(t, "/api/auth/register", models.RegisterInput{
		Name:     "Andi",
		Phone:    "081234567890",
		Password: "rahasia123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Registrasi berhasil", resp.Message)

	// Response harus bawa token dan TIDAK bocorin hash password
	assert.Contains(t, w.Body.String(), "token")
	assert.NotContains(t, w.Body.String(), "rahasia123")
	assert.NotContains(t, w.Body.String(), "$2a$")
}

func TestRegister_DuplicatePhone(t *testing.T) {
	f := newAuthFixture(t)

	f.post(t, "/api/auth/register", models.RegisterInput{Name: "Andi", Phone: "081234567890", Password: "rahasia123"})
	w, resp := f.post(t, "/api/auth/register", models.RegisterInput{Name: "Lain", Phone: "081234567890", Password: "rahasia456"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Nomor HP sudah terdaftar", resp.Message)
}

func TestRegister_ValidationErrors(t *testing.T) {
	f := newAuthFixture(t)

	// Password kependekan + phone kependekan
	w, resp := f.post(t, "/api/auth/register", models.RegisterInput{Name: "Andi", Phone: "08", Password: "123"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Data tidak valid", resp.Message)
	assert.NotEmpty(t, resp.Errors)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	f.post(t, "/api/auth/register", models.RegisterInput{Name: "Andi", Phone: "081234567890", Password: "rahasia123"})

	w, resp := f.post(t, "/api/auth/login", models.LoginInput{Phone: "081234567890", Password: "rahasia123"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	// Password salah dan nomor tidak terdaftar: pesan sama, tidak bisa dibedakan
	w, resp = f.post(t, "/api/auth/login", models.LoginInput{Phone: "081234567890", Password: "salah"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Nomor HP atau password salah", resp.Message)

	w, resp = f.post(t, "/api/auth/login", models.LoginInput{Phone: "089999999999", Password: "rahasia123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Nomor HP atau password salah", resp.Message)
}

func TestLogin_SavesFCMToken(t *testing.T) {
	f := newAuthFixture(t)
	f.post(t, "/api/auth/register", models.RegisterInput{Name: "Andi", Phone: "081234567890", Password: "rahasia123"})

	w, _ := f.post(t, "/api/auth/login", models.LoginInput{Phone: "081234567890", Password: "rahasia123", FCMToken: "device-token-abc"})
	require.Equal(t, http.StatusOK, w.Code)

	user, err := f.users.FindByPhone("081234567890")
	require.NoError(t, err)
	require.NotNil(t, user.FCMToken)
	assert.Equal(t, "device-token-abc", *user.FCMToken)
}

func TestGoogleLogin_CreatesNewUser(t *testing.T) {
	f := newAuthFixture(t)
	f.handler.verifyGoogle = func(ctx context.Context, token string) (*utils.GoogleUser, error) {
		return &utils.GoogleUser{GoogleID: "g-123", Email: "andi@gmail.com", Name: "Andi"}, nil
	}

	w, resp := f.post(t, "/api/auth/google", models.GoogleLoginInput{Token: "id-token"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	user, err := f.users.FindByGoogleOrEmail("g-123", "")
	require.NoError(t, err)
	assert.Equal(t, "Andi", user.Name)
	assert.Empty(t, user.PasswordHash)

	// Akun Google tanpa password tidak bisa login lewat jalur password
	w, _ = f.post(t, "/api/auth/login", models.LoginInput{Phone: "081234567890", Password: ""})
	assert.Equal(t, http.StatusBadRequest, w.Code) // password required
}

func TestGoogleLogin_LinksExistingAccount(t *testing.T) {
	f := newAuthFixture(t)
	f.post(t, "/api/auth/register", models.RegisterInput{Name: "Andi", Phone: "081234567890", Password: "rahasia123", Email: "andi@gmail.com"})

	f.handler.verifyGoogle = func(ctx context.Context, token string) (*utils.GoogleUser, error) {
		return &utils.GoogleUser{GoogleID: "g-123", Email: "andi@gmail.com", Name: "Andi"}, nil
	}

	w, _ := f.post(t, "/api/auth/google", models.GoogleLoginInput{Token: "id-token"})
	assert.Equal(t, http.StatusOK, w.Code)

	// google_id ter-backfill ke akun lama, bukan bikin akun baru
	user, err := f.users.FindByPhone("081234567890")
	require.NoError(t, err)
	require.NotNil(t, user.GoogleID)
	assert.Equal(t, "g-123", *user.GoogleID)
	assert.Len(t, f.users.users, 1)
}

func TestGoogleLogin_InvalidToken(t *testing.T) {
	f := newAuthFixture(t)
	f.handler.verifyGoogle = func(ctx context.Context, token string) (*utils.GoogleUser, error) {
		return nil, utils.ErrGoogleTokenInvalid
	}

	w, resp := f.post(t, "/api/auth/google", models.GoogleLoginInput{Token: "token-palsu"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token Google tidak valid", resp.Message)
}

func TestMitraRegister(t *testing.T) {
	f := newAuthFixture(t)

	w, resp := f.post(t, "/api/auth/mitra/register", models.MitraRegisterInput{
		Name:        "Budi Santoso",
		Phone:       "081234567891",
		Password:    "rahasia123",
		Address:     "Jl. Kenanga No. 3",
		ServiceType: models.ServiceTypeCleaning,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Registrasi mitra berhasil. Menunggu verifikasi admin.", resp.Message)

	// Registrasi mitra tidak langsung dapat token
	assert.NotContains(t, w.Body.String(), "\"token\"")

	m, err := f.mitra.FindByPhone("081234567891")
	require.NoError(t, err)
	assert.False(t, m.IsVerified)
	assert.True(t, m.IsActive)
}

func TestMitraRegister_InvalidServiceType(t *testing.T) {
	f := newAuthFixture(t)

	w, resp := f.post(t, "/api/auth/mitra/register", models.MitraRegisterInput{
		Name:        "Budi",
		Phone:       "081234567891",
		Password:    "rahasia123",
		Address:     "Jl. Kenanga",
		ServiceType: "plumbing",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestMitraLogin_UnverifiedRejected(t *testing.T) {
	f := newAuthFixture(t)
	f.seedMitra(t, "081234567891", "rahasia123", false, true)

	// Password benar pun tetap 401 selama belum diverifikasi
	w, resp := f.post(t, "/api/auth/mitra/login", models.MitraLoginInput{Phone: "081234567891", Password: "rahasia123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Akun mitra belum diverifikasi oleh admin", resp.Message)
}

func TestMitraLogin_InactiveRejected(t *testing.T) {
	f := newAuthFixture(t)
	f.seedMitra(t, "081234567891", "rahasia123", true, false)

	w, resp := f.post(t, "/api/auth/mitra/login", models.MitraLoginInput{Phone: "081234567891", Password: "rahasia123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Akun mitra tidak aktif", resp.Message)
}

func TestMitraLogin_VerifiedActive(t *testing.T) {
	f := newAuthFixture(t)
	f.seedMitra(t, "081234567891", "rahasia123", true, true)

	w, resp := f.post(t, "/api/auth/mitra/login", models.MitraLoginInput{Phone: "081234567891", Password: "rahasia123"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login mitra berhasil", resp.Message)
	assert.Contains(t, w.Body.String(), "token")
}

func TestAdminLogin(t *testing.T) {
	f := newAuthFixture(t)
	hash, err := utils.HashPassword("admin-rahasia")
	require.NoError(t, err)
	f.admins.admins[1] = &models.Admin{ID: 1, Username: "admin", PasswordHash: hash}

	w, resp := f.post(t, "/api/auth/admin/login", models.AdminLoginInput{Username: "admin", Password: "admin-rahasia"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login admin berhasil", resp.Message)

	w, resp = f.post(t, "/api/auth/admin/login", models.AdminLoginInput{Username: "admin", Password: "salah"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Username atau password salah", resp.Message)
}
