package httpHandler

import (
	"net/http"

	"reminder-api/entities"
	"reminder-api/handlers"
	"reminder-api/usecases"

	"github.com/gin-gonic/gin"
)

type ReminderHandler struct {
	useCase *usecases.ReminderUseCase
}

func NewReminderHandler(useCase *usecases.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{
		useCase: useCase,
	}
}

type createReminderRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	SendEmail   bool   `json:"send_email"`
	Email       string `json:"email"`
	Recurring   bool   `json:"recurring"`
}

type updateReminderRequest struct {
	ID          *uint  `json:"id" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	SendEmail   bool   `json:"send_email"`
	Email       string `json:"email"`
	Recurring   bool   `json:"recurring"`
}

// ID is a pointer so that only a missing id fails binding; id=0 is looked
// up like any other id and ends in not found.
type reminderByIDQuery struct {
	ID *uint `form:"id" binding:"required"`
}

type reminderByNameQuery struct {
	Name string `form:"name" binding:"required"`
}

// CreateReminder handles POST /create
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	user, _ := handlers.GetCurrentUser(c)

	var req createReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		createReminderErrors.respond(c, bindError(err))
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		createReminderErrors.respond(c, err)
		return
	}

	reminder, err := h.useCase.Create(c.Request.Context(), user.ID, usecases.CreateReminderInput{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     dueDate,
		SendEmail:   req.SendEmail,
		Recurring:   req.Recurring,
		Email:       req.Email,
	})
	if err != nil {
		createReminderErrors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder.View())
}

// GetReminder handles GET /reminder?id=
func (h *ReminderHandler) GetReminder(c *gin.Context) {
	user, _ := handlers.GetCurrentUser(c)

	var query reminderByIDQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		readReminderErrors.respond(c, bindError(err))
		return
	}

	reminder, err := h.useCase.GetByID(c.Request.Context(), user.ID, *query.ID)
	if err != nil {
		readReminderErrors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder.View())
}

// GetReminderByName handles GET /reminder_name?name=
func (h *ReminderHandler) GetReminderByName(c *gin.Context) {
	user, _ := handlers.GetCurrentUser(c)

	var query reminderByNameQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		readReminderErrors.respond(c, bindError(err))
		return
	}

	reminder, err := h.useCase.GetByName(c.Request.Context(), user.ID, query.Name)
	if err != nil {
		readReminderErrors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder.View())
}

// GetReminders handles GET /reminders
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	user, _ := handlers.GetCurrentUser(c)

	reminders, err := h.useCase.ListByOwner(c.Request.Context(), user.ID)
	if err != nil {
		listReminderErrors.respond(c, err)
		return
	}

	views := make([]entities.ReminderView, 0, len(reminders))
	for i := range reminders {
		views = append(views, reminders[i].View())
	}

	c.JSON(http.StatusOK, gin.H{"reminders": views})
}

// UpdateReminder handles PUT /update
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	user, _ := handlers.GetCurrentUser(c)

	var req updateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		updateReminderErrors.respond(c, bindError(err))
		return
	}

	in := usecases.UpdateReminderInput{
		Name:        req.Name,
		Description: req.Description,
		SendEmail:   req.SendEmail,
		Recurring:   req.Recurring,
		Email:       req.Email,
	}
	if req.DueDate != "" {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			updateReminderErrors.respond(c, err)
			return
		}
		in.DueDate = dueDate
	}

	reminder, err := h.useCase.Update(c.Request.Context(), user.ID, *req.ID, in)
	if err != nil {
		updateReminderErrors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, reminder.View())
}

// DeleteReminder handles DELETE /delete?id=
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	user, _ := handlers.GetCurrentUser(c)

	var query reminderByIDQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		deleteReminderErrors.respond(c, bindError(err))
		return
	}

	name, err := h.useCase.Delete(c.Request.Context(), user.ID, *query.ID)
	if err != nil {
		deleteReminderErrors.respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lembrete removido",
		"name":    name,
	})
}
