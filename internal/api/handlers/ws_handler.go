package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/talentscout/scout/internal/services"
	"github.com/talentscout/scout/internal/utils"
)

type WSHandler struct {
	interviews services.InterviewService
	log        *logrus.Logger
	upgrader   websocket.Upgrader
}

func NewWSHandler(interviews services.InterviewService, log *logrus.Logger) *WSHandler {
	return &WSHandler{
		interviews: interviews,
		log:        log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origin in prod
		},
	}
}

type wsClientMsg struct {
	Type string `json:"type"` // "message"
	Text string `json:"text"`
}

type wsServerMsg struct {
	Type string `json:"type"` // "chunk" | "turn" | "error"

	Text   string               `json:"text,omitempty"`
	Turn   *services.TurnResult `json:"turn,omitempty"`
	Code   utils.Code           `json:"code,omitempty"`
	Reason string               `json:"reason,omitempty"`
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.c.WriteMessage(websocket.TextMessage, b)
}

// InterviewWS runs the same turn pipeline as the HTTP message endpoint, with
// the assistant reply streamed chunk by chunk. One turn is fully processed
// before the next client message is read.
func (h *WSHandler) InterviewWS(c *gin.Context) {
	sessionID := c.Param("session_id")
	if _, err := h.interviews.Get(c.Request.Context(), sessionID); err != nil {
		writeError(c, err)
		return
	}

	raw, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer raw.Close()
	conn := &wsConn{c: raw}

	for {
		_, data, err := raw.ReadMessage()
		if err != nil {
			return
		}

		var msg wsClientMsg
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "message" {
			_ = conn.writeJSON(wsServerMsg{Type: "error", Code: utils.CodeInvalidArgument, Reason: "expected {\"type\":\"message\",\"text\":...}"})
			continue
		}

		res, err := h.interviews.MessageStream(c.Request.Context(), sessionID, msg.Text, func(chunk string) error {
			return conn.writeJSON(wsServerMsg{Type: "chunk", Text: chunk})
		})
		if err != nil {
			var ae *utils.AppError
			code := utils.CodeInternal
			reason := "turn failed"
			if errors.As(err, &ae) {
				code = ae.Code
				reason = ae.Message
			}
			h.log.WithError(err).WithField("session_id", sessionID).Warn("ws turn failed")
			if werr := conn.writeJSON(wsServerMsg{Type: "error", Code: code, Reason: reason}); werr != nil {
				return
			}
			continue
		}

		if werr := conn.writeJSON(wsServerMsg{Type: "turn", Turn: res}); werr != nil {
			return
		}
	}
}
