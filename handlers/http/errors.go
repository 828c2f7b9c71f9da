package httpHandler

import (
	"net/http"

	"reminder-api/apperrors"
	"reminder-api/handlers"

	"github.com/gin-gonic/gin"
)

// errorMapping maps error kinds to a status for one operation. Kinds missing
// from byKind use the fallback status and message.
type errorMapping struct {
	fallbackStatus  int
	fallbackMessage string
	byKind          map[apperrors.Kind]int
}

// The operations do not agree on how unexpected errors surface: create
// answers 400, update 500, delete always 404 and the user routes 400.
var (
	createReminderErrors = errorMapping{
		fallbackStatus:  http.StatusBadRequest,
		fallbackMessage: "Ocorreu um erro ao salvar o lembrete.",
		byKind: map[apperrors.Kind]int{
			apperrors.KindValidation: http.StatusBadRequest,
			apperrors.KindConflict:   http.StatusConflict,
		},
	}
	readReminderErrors = errorMapping{
		fallbackStatus:  http.StatusNotFound,
		fallbackMessage: "O lembrete buscado não existe.",
		byKind: map[apperrors.Kind]int{
			apperrors.KindValidation:  http.StatusBadRequest,
			apperrors.KindPersistence: http.StatusInternalServerError,
		},
	}
	listReminderErrors = errorMapping{
		fallbackStatus:  http.StatusInternalServerError,
		fallbackMessage: "Ocorreu um erro ao listar os lembretes.",
	}
	updateReminderErrors = errorMapping{
		fallbackStatus:  http.StatusInternalServerError,
		fallbackMessage: "Ocorreu um erro ao salvar o lembrete na base",
		byKind: map[apperrors.Kind]int{
			apperrors.KindValidation: http.StatusBadRequest,
			apperrors.KindNotFound:   http.StatusNotFound,
		},
	}
	deleteReminderErrors = errorMapping{
		fallbackStatus:  http.StatusNotFound,
		fallbackMessage: "Lembrete não encontrado :/",
		byKind: map[apperrors.Kind]int{
			apperrors.KindValidation: http.StatusBadRequest,
		},
	}
	createUserErrors = errorMapping{
		fallbackStatus:  http.StatusBadRequest,
		fallbackMessage: "Ocorreu um erro ao cadastrar o usuário.",
	}
	validateUserErrors = errorMapping{
		fallbackStatus:  http.StatusBadRequest,
		fallbackMessage: "Usuário ou senha inválidos.",
	}
	getUserErrors = errorMapping{
		fallbackStatus:  http.StatusBadRequest,
		fallbackMessage: "Usuário não encontrado.",
	}
)

func (m errorMapping) status(err error) int {
	if status, ok := m.byKind[apperrors.KindOf(err)]; ok {
		return status
	}
	return m.fallbackStatus
}

// message keeps the localized message of known kinds. Persistence failures
// and plain errors get the operation's fallback message.
func (m errorMapping) message(err error) string {
	switch apperrors.KindOf(err) {
	case "", apperrors.KindPersistence:
		return m.fallbackMessage
	}
	return apperrors.MessageOf(err, m.fallbackMessage)
}

func (m errorMapping) respond(c *gin.Context, err error) {
	status := m.status(err)
	handlers.GetLogger(c).Warn("request failed", "status", status, "error", err)
	c.JSON(status, handlers.ErrorBody(m.message(err)))
}
