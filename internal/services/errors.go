package services

import "errors"

// Error domain. Handler yang menerjemahkan ke HTTP status + pesan;
// di layer ini "kalah race" dan "tidak ketemu" sengaja dibedakan
// walaupun kontrak API lama menggabungkan keduanya jadi 404.
var (
	ErrServiceNotFound  = errors.New("layanan tidak ditemukan")
	ErrOrderNotFound    = errors.New("pesanan tidak ditemukan")
	ErrAlreadyTaken     = errors.New("pesanan sudah diambil mitra lain")
	ErrWrongServiceType = errors.New("tipe layanan tidak sesuai dengan keahlian mitra")
	ErrCannotCancel     = errors.New("pesanan tidak bisa dibatalkan")
	ErrMitraNotFound    = errors.New("data mitra tidak ditemukan")
)
