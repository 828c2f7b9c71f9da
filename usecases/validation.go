package usecases

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"reminder-api/apperrors"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// messages maps StructField.tag to the error shown to clients.
var messages = map[string]string{
	"Name.required":        "O nome não pode ser vazio!",
	"Name.nodigits":        "O nome do lembrete não pode conter números",
	"Description.required": "A descrição não pode ser vazia!",
	"Email.required":       "O email não pode ser vazio!",
	"Username.required":    "O nome não pode ser vazio!",
	"Username.nodigits":    "O nome do usuário não pode conter números!",
	"Password.trimmin":     "A senha precisa ter no mínimo 4 caracteres!",
}

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "nodigits", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "0123456789")
	})
	mustRegister(v, "trimmin", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
	})
	return v
}

// mustRegister panics when tag cannot be registered; it only runs while the
// package validator is built.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("usecases: register validation %q: %v", tag, err))
	}
}

// validateInput runs the struct tags of input and reports the first failure
// as a validation error.
func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return apperrors.Wrap(err, apperrors.KindValidation, "Dados inválidos.")
	}

	fieldErr := ve[0]
	msg, ok := messages[fieldErr.StructField()+"."+fieldErr.Tag()]
	if !ok {
		msg = "Campo inválido: " + strings.ToLower(fieldErr.Field())
	}
	return apperrors.Wrap(fieldErr, apperrors.KindValidation, msg)
}
