package handlers

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phonePattern телефон: '+' и от 6 до 14 цифр
var phonePattern = regexp.MustCompile(`^\+\d{6,14}$`)

// RegisterCustomValidators регистрирует доменные правила валидации на
// движке биндинга Gin. Имена полей в сообщениях об ошибках берутся из
// json-тегов.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validationMessage собирает все ошибки валидации в одну строку вида
// "поле: сообщение, поле: сообщение"
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "malformed request body"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+": "+fieldMessage(fe))
	}

	return strings.Join(parts, ", ")
}

// fieldMessage возвращает человекочитаемое сообщение для одной ошибки поля
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "phone":
		return "must start with '+' and contain 6 to 14 digits"
	default:
		return "is invalid"
	}
}
