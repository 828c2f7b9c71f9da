package httpHandler

import (
	"strings"
	"time"

	"reminder-api/apperrors"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// dueDateLayouts are tried in order. The first one also accepts fractional
// seconds such as 2025-01-01T00:00:00.000Z.
var dueDateLayouts = []string{"2006-01-02T15:04:05Z", time.RFC3339Nano}

func parseDueDate(raw string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperrors.Validation("A data do lembrete deve seguir o formato AAAA-MM-DDTHH:MM:SS.sssZ.")
}

// bindError turns a gin binding failure into a validation error naming the
// first offending field.
func bindError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fieldErr := ve[0]
		switch fieldErr.Field() {
		case "ID":
			return apperrors.Validation("O id do lembrete é obrigatório.")
		case "Name":
			return apperrors.Validation("O nome não pode ser vazio!")
		case "Username":
			return apperrors.Validation("O nome de usuário é obrigatório.")
		default:
			return apperrors.Validation("Parâmetro inválido: " + strings.ToLower(fieldErr.Field()))
		}
	}
	return apperrors.Wrap(err, apperrors.KindValidation, "Corpo da requisição inválido.")
}
