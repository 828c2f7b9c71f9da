package handlers

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

const (
	ContextLoggerKey = "logger"
	ContextUserKey   = "user"
)

// AuthenticatedUser is stored in the gin context once Basic Auth succeeds.
type AuthenticatedUser struct {
	ID       uint   `json:"user_id"`
	Username string `json:"username"`
}

// GetLogger retrieves the request logger from the gin context
// If no logger exists in the context, it returns a default JSON logger
func GetLogger(c *gin.Context) *slog.Logger {
	if logger, exists := c.Get(ContextLoggerKey); exists {
		if l, ok := logger.(*slog.Logger); ok {
			return l
		}
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func GetCurrentUser(c *gin.Context) (AuthenticatedUser, error) {
	user, exists := c.Get(ContextUserKey)
	if !exists {
		return AuthenticatedUser{}, fmt.Errorf("user not authenticated")
	}

	authenticated, ok := user.(AuthenticatedUser)
	if !ok {
		return AuthenticatedUser{}, fmt.Errorf("invalid user type in context")
	}
	return authenticated, nil
}

// ErrorBody builds the error envelope shared by every error response.
func ErrorBody(message string) []gin.H {
	return []gin.H{{"ctx": gin.H{"error": message}}}
}
