package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	apperror "golibrary/internal/errors"
)

// Validator aplica as regras declaradas nas tags `validate` dos modelos de entrada.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New cria um Validator com as regras customizadas registradas.
func New() *Validator {
	v := &Validator{validate: validator.New(), now: time.Now}

	// Os nomes dos campos nos erros seguem a tag json, como o cliente os enviou.
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// pastdate: a data precisa estar no passado.
	_ = v.validate.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		return ok && t.Before(v.now())
	})

	return v
}

// Validate devolve todas as violações encontradas em input. Lista vazia significa válido.
func (v *Validator) Validate(input interface{}) []apperror.FieldError {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperror.FieldError{{Field: "", Message: err.Error()}}
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return fields
}

// Check valida input e, havendo violações, devolve um ValidationError com a lista completa.
func (v *Validator) Check(input interface{}, msg string) error {
	if fields := v.Validate(input); len(fields) > 0 {
		return apperror.NewValidationError(msg, fields...)
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s deve ter no mínimo %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s deve ser no mínimo %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s deve ter no máximo %s caracteres", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s deve ser no máximo %s", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("%s deve ser um UUID válido", fe.Field())
	case "url":
		return fmt.Sprintf("%s deve ser uma URL válida", fe.Field())
	case "pastdate":
		return fmt.Sprintf("%s deve estar no passado", fe.Field())
	default:
		return fmt.Sprintf("%s é inválido (%s)", fe.Field(), fe.Tag())
	}
}
