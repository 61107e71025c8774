package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role yang dikenali sistem. Disimpan di claim "role".
const (
	RoleCustomer = "customer"
	RoleMitra    = "mitra"
	RoleAdmin    = "admin"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "rahasia_dapur_jasarumah" // Fallback kalau .env lupa diisi
	}
	return []byte(secret)
}

func tokenLifetime() time.Duration {
	// Default 7 hari (168 jam), sama dengan kontrak lama
	hours := 168
	if v := os.Getenv("JWT_EXPIRES_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			hours = n
		}
	}
	return time.Duration(hours) * time.Hour
}

// GenerateToken membuat JWT HS256 berisi {id, role}
func GenerateToken(id uint64, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  time.Now().Add(tokenLifetime()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken memverifikasi signature + expiry dan mengembalikan token terparse
func ValidateToken(encodedToken string) (*jwt.Token, error) {
	return jwt.Parse(encodedToken, func(token *jwt.Token) (interface{}, error) {
		// Validasi algoritma (harus HMAC, tolak alg "none" dkk)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
}
