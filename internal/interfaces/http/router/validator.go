package router

import (
	"github.com/crediario/backend/internal/domain/partner"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidations installs custom binding rules on gin's validator engine
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// cpf accepts a Brazilian CPF with or without punctuation
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		_, err := partner.NormalizeTaxID(fl.Field().String())
		return err == nil
	})
}
