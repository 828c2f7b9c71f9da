package httpHandler

import (
	"net/http"

	"reminder-api/apperrors"
	"reminder-api/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
}

func NewUserHandler(useCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

type userCredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userQuery struct {
	Username string `form:"username" binding:"required"`
}

// CreateUser handles POST /user/create
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req userCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		createUserErrors.respond(c, bindError(err))
		return
	}

	user, err := h.useCase.Register(c.Request.Context(), usecases.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		createUserErrors.respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"username": user.Username})
}

// ValidateUser handles POST /user/validate
func (h *UserHandler) ValidateUser(c *gin.Context) {
	var req userCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validateUserErrors.respond(c, bindError(err))
		return
	}

	if !h.useCase.Verify(c.Request.Context(), req.Username, req.Password) {
		validateUserErrors.respond(c, apperrors.Auth(validateUserErrors.fallbackMessage))
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": req.Username})
}

// GetUser handles GET /user/get?username=
func (h *UserHandler) GetUser(c *gin.Context) {
	var query userQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		getUserErrors.respond(c, bindError(err))
		return
	}

	user, err := h.useCase.GetByUsername(c.Request.Context(), query.Username)
	if err != nil {
		getUserErrors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"user_id":  user.ID,
	})
}
