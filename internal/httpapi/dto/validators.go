package dto

import (
	"dmthub/internal/status"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// The "pendaftaran" tag restricts a field to the known approval states.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("pendaftaran", func(fl validator.FieldLevel) bool {
			return status.IsValidPendaftaran(fl.Field().String())
		})
	}
}
