package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type route struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Auth        bool   `json:"auth"`
	Description string `json:"description"`
}

var routes = []route{
	{http.MethodPost, "/create", true, "Adiciona um novo lembrete"},
	{http.MethodGet, "/reminder", true, "Busca um lembrete pelo id"},
	{http.MethodGet, "/reminder_name", true, "Busca um lembrete pelo nome"},
	{http.MethodGet, "/reminders", true, "Lista os lembretes do usuário"},
	{http.MethodPut, "/update", true, "Atualiza um lembrete"},
	{http.MethodDelete, "/delete", true, "Remove um lembrete"},
	{http.MethodPost, "/user/create", false, "Cadastra um usuário"},
	{http.MethodPost, "/user/validate", false, "Valida usuário e senha"},
	{http.MethodGet, "/user/get", false, "Busca um usuário pelo nome"},
	{http.MethodGet, "/ws", true, "Eventos de lembretes via websocket"},
	{http.MethodGet, "/health", false, "Healthcheck"},
}

// Documentation handles GET /
func Documentation(c *gin.Context) {
	c.Redirect(http.StatusFound, "/openapi")
}

// OpenAPI handles GET /openapi
func OpenAPI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"info": gin.H{
			"title":   "Reminder API",
			"version": "1.0.0",
		},
		"security": "HTTP Basic",
		"routes":   routes,
	})
}
