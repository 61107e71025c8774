package utils

import "strconv"

// StringToUint64 mengubah string angka menjadi uint64.
// Berguna untuk parsing ID dari URL parameter; 0 kalau gagal.
func StringToUint64(str string) uint64 {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

// ParseBoolQuery membaca query param boolean opsional ("true"/"false").
// Return nil kalau param tidak dikirim, biar filter bisa dibedakan
// antara "tidak difilter" dan "filter false".
func ParseBoolQuery(value string) *bool {
	if value == "" {
		return nil
	}
	b := value == "true" || value == "1"
	return &b
}
