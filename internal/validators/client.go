package validators

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/clients-api/internal/dto"
	"github.com/BruksfildServices01/clients-api/internal/timezone"
)

const cpfLength = 11

var registerOnce sync.Once

// IsCPF reports whether s is exactly eleven ASCII digits. Check digits are
// not verified.
func IsCPF(s string) bool {
	if len(s) != cpfLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsNotFuture reports whether the calendar date of t is not after today.
func IsNotFuture(t time.Time) bool {
	return !timezone.DateOf(t).After(timezone.Today())
}

func cpf(fl validator.FieldLevel) bool {
	return IsCPF(fl.Field().String())
}

func clientDTO(sl validator.StructLevel) {
	d := sl.Current().Interface().(dto.ClientDTO)
	if d.BirthDate != nil && !IsNotFuture(d.BirthDate.Time()) {
		sl.ReportError(d.BirthDate, "birthDate", "BirthDate", "notfuture", "")
	}
}

// Register installs the custom rules on v and makes field errors report the
// json name of the field.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("cpf", cpf)
	v.RegisterStructValidation(clientDTO, dto.ClientDTO{})

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// RegisterGin installs the rules on gin's binding validator once.
func RegisterGin() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			Register(v)
		}
	})
}
