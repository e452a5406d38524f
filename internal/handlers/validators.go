package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fieldwork/fsm_backend/internal/core/domain"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
// It is safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("sourcetype", validSourceType)
}

func validSourceType(fl validator.FieldLevel) bool {
	return domain.SourceType(fl.Field().String()).Valid()
}
