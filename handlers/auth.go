package handlers

import (
	"net/http"

	"reminder-api/apperrors"
	"reminder-api/usecases"

	"github.com/gin-gonic/gin"
)

const msgAccessDenied = "Acesso negado: usuário ou senha inválidos."

// BasicAuth gates a route group behind HTTP Basic credentials. A username
// query parameter, when sent, must name the authenticated user.
func BasicAuth(users *usecases.UserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLogger(c)

		username, password, ok := c.Request.BasicAuth()
		if !ok {
			deny(c, msgAccessDenied)
			return
		}

		user, err := users.Authenticate(c.Request.Context(), username, password)
		if err != nil {
			logger.Warn("auth: denied", "username", username, "error", err)
			deny(c, apperrors.MessageOf(err, msgAccessDenied))
			return
		}

		if q := requestedUsername(c); q != "" && q != user.Username {
			logger.Warn("auth: username mismatch", "username", user.Username, "requested", q)
			deny(c, "Acesso negado: o lembrete pertence a outro usuário.")
			return
		}

		c.Set(ContextUserKey, AuthenticatedUser{ID: user.ID, Username: user.Username})
		c.Next()
	}
}

// requestedUsername returns the username sent as a query or form parameter.
func requestedUsername(c *gin.Context) string {
	if q, ok := c.GetQuery("username"); ok {
		return q
	}
	return c.PostForm("username")
}

func deny(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", `Basic realm="reminders"`)
	c.AbortWithStatusJSON(http.StatusForbidden, ErrorBody(message))
}
