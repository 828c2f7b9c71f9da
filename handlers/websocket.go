package handlers

import (
	"net/http"

	"reminder-api/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler pushes reminder events to the authenticated user
type WSHandler struct {
	mgr *ws.Manager
}

func NewWSHandler(mgr *ws.Manager) *WSHandler {
	return &WSHandler{mgr: mgr}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleReminderWS upgrades to websocket and keeps the connection registered
// until the client goes away. Incoming messages are ignored.
// GET /ws
func (h *WSHandler) HandleReminderWS(c *gin.Context) {
	user, err := GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusForbidden, ErrorBody(msgAccessDenied))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		GetLogger(c).Warn("ws: upgrade failed", "error", err)
		return
	}

	h.mgr.Register(user.ID, conn)
	GetLogger(c).Info("ws: connected", "user_id", user.ID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mgr.Unregister(user.ID, conn)
			GetLogger(c).Info("ws: disconnected", "user_id", user.ID)
			return
		}
	}
}
