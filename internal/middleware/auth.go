package middleware

import (
	"net/http"
	"strings"

	"jasarumah-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Key context untuk principal hasil verifikasi token
const (
	ContextPrincipalID = "principalID"
	ContextRole        = "role"
)

// AuthMiddleware memverifikasi bearer token dan menaruh {id, role}
// ke context request. Token invalid/expired -> 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token akses diperlukan", nil)
			c.Abort()
			return
		}

		// Format harus "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Format token salah", nil)
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(parts[1])
		if err != nil || !token.Valid {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak valid", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Gagal memproses token", nil)
			c.Abort()
			return
		}

		// JWT parse angka sebagai float64 -> convert ke uint64
		var id uint64
		if val, ok := claims["id"].(float64); ok {
			id = uint64(val)
		}
		role, _ := claims["role"].(string)

		if id == 0 || role == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak valid", nil)
			c.Abort()
			return
		}

		c.Set(ContextPrincipalID, id)
		c.Set(ContextRole, role)

		c.Next()
	}
}

// PrincipalID mengambil id principal yang sudah diset AuthMiddleware
func PrincipalID(c *gin.Context) uint64 {
	id, _ := c.Get(ContextPrincipalID)
	val, _ := id.(uint64)
	return val
}

func requireRole(role, denyMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get(ContextRole)
		if !exists || current.(string) != role {
			utils.APIResponse(c, http.StatusForbidden, false, denyMessage, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CustomerOnly: route group /api/customer
func CustomerOnly() gin.HandlerFunc {
	return requireRole(utils.RoleCustomer, "Akses ditolak. Hanya customer yang diizinkan")
}

// MitraOnly: route group /api/mitra
func MitraOnly() gin.HandlerFunc {
	return requireRole(utils.RoleMitra, "Akses ditolak. Hanya mitra yang diizinkan")
}

// AdminOnly: route group /api/admin
func AdminOnly() gin.HandlerFunc {
	return requireRole(utils.RoleAdmin, "Akses ditolak. Hanya admin yang diizinkan")
}
