package validators

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindings adds the phone10 and looseemail tags to gin's validator
// and makes validation errors report JSON field names. Both tags check the
// trimmed value; phone10=optional also accepts a blank phone.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	if err := v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		phone := strings.TrimSpace(fl.Field().String())
		if phone == "" && fl.Param() == "optional" {
			return true
		}
		return IsPhone(phone)
	}); err != nil {
		return err
	}

	return v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return IsEmail(strings.TrimSpace(fl.Field().String()))
	})
}
