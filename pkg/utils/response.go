package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Format response standar biar frontend enak bacanya
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`   // omitempty: kalau null, ga usah dimunculin
	Errors  []string    `json:"errors,omitempty"` // Detail error validasi per field
}

func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}

// APIValidationError mengubah error binding gin menjadi array pesan per field,
// mengikuti kontrak lama: 400 + message "Data tidak valid" + errors[]
func APIValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	msgs := []string{}
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			msgs = append(msgs, fieldErrorMessage(fe))
		}
	} else {
		msgs = append(msgs, err.Error())
	}

	c.JSON(400, Response{
		Success: false,
		Message: "Data tidak valid",
		Errors:  msgs,
	})
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " harus diisi"
	case "email":
		return fe.Field() + " bukan email yang valid"
	case "min":
		return fe.Field() + " minimal " + fe.Param() + " karakter"
	case "oneof":
		return fe.Field() + " harus salah satu dari: " + fe.Param()
	case "datetime":
		return fe.Field() + " format tidak valid"
	case "gte":
		return fe.Field() + " harus angka positif"
	default:
		return fe.Field() + " tidak valid"
	}
}
