package service

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/usm-portal/event-portal-api/internal/models"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
)

// NewValidator builds the shared validator with the portal's enum rules and
// json-tag field naming, so validation errors speak the wire field names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.EventCategory(fl.Field().String()).Valid()
	})
	v.RegisterValidation("audience", func(fl validator.FieldLevel) bool {
		return models.EventAudience(fl.Field().String()).Valid()
	})
	v.RegisterValidation("changetype", func(fl validator.FieldLevel) bool {
		return models.ChangeType(fl.Field().String()).Valid()
	})
	return v
}

// fieldErrors converts validator output into a field → message map so a
// caller can render every invalid field at once. Validation never aborts on
// the first failure.
func fieldErrors(err error) *appErrors.Error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return appErrors.Clone(appErrors.ErrValidation, "invalid payload")
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = messageFor(fe)
	}
	return appErrors.NewValidation(fields)
}

func messageFor(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "min":
		if isString {
			return fmt.Sprintf("Debe tener al menos %s caracteres", fe.Param())
		}
		return fmt.Sprintf("Debe ser al menos %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("No puede exceder %s caracteres", fe.Param())
		}
		return fmt.Sprintf("No puede ser mayor que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Debe ser mayor o igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Debe ser menor o igual a %s", fe.Param())
	case "email":
		return "Debes proporcionar un email válido"
	case "url":
		return "Debes proporcionar una URL válida"
	case "eq":
		return "Debes aceptar los términos y condiciones"
	case "category":
		return "Debes seleccionar una categoría válida"
	case "audience":
		return "Debes seleccionar el tipo de público"
	case "changetype":
		return "Debes seleccionar el tipo de cambio"
	default:
		return "Valor inválido"
	}
}
