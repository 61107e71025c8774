package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination: kontrak yang sama dipakai semua endpoint list
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// GetPageParams membaca ?page= dan ?limit= dengan default 1 dan 10.
// Nilai aneh (0, negatif, bukan angka) dikembalikan ke default.
func GetPageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// Offset menghitung offset query: (page-1) * limit
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// BuildPagination menghitung pages = ceil(total/limit)
func BuildPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
