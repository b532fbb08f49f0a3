package handlers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerCustomValidators installs request validations that binding tags
// cannot express on their own. Safe to call from every route registrar.
func registerCustomValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("currencycode", validCurrencyCode)
		}
	})
}

// validCurrencyCode accepts a three letter alphabetic code, case insensitive.
// Normalisation to upper case happens in the service layer.
func validCurrencyCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
