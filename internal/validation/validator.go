package validation

import (
	"errors"
	"reflect"
	"strings"

	"flowworks-backend/internal/phone"
	"flowworks-backend/internal/utils"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

// New builds the shared validator. Phone numbers without a country code are
// interpreted in phoneRegion.
func New(phoneRegion string) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names so details map straight onto form inputs.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return phone.IsValid(value, phoneRegion)
	})

	v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return utils.IsSlug(value)
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
