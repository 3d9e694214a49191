package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterBindings adds the custom tags to gin's validator engine.
// "trimmed" rejects leading or trailing whitespace, so length rules apply to
// the value that is stored.
func RegisterBindings() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("trimmed", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == strings.TrimSpace(s)
		})
		_ = v.RegisterValidation("password_upper", func(fl validator.FieldLevel) bool {
			return HasUppercase(fl.Field().String())
		})
		_ = v.RegisterValidation("password_special", func(fl validator.FieldLevel) bool {
			return HasSpecial(fl.Field().String())
		})
	})
}

// Messages turns a binding error into one readable message per field.
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"invalid request body"}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid id", field)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "trimmed":
		return fmt.Sprintf("%s must not start or end with whitespace", field)
	case "password_upper":
		return "At least one uppercase letter"
	case "password_special":
		return "At least one special character"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
