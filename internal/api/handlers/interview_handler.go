package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talentscout/scout/internal/interview"
	"github.com/talentscout/scout/internal/services"
	"github.com/talentscout/scout/internal/utils"
)

type InterviewHandler struct {
	svc services.InterviewService
}

func NewInterviewHandler(svc services.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

type StartInterviewResponse struct {
	SessionID  string           `json:"session_id"`
	Transcript []interview.Turn `json:"transcript"`
}

type MessageRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *InterviewHandler) Start(c *gin.Context) {
	sess, err := h.svc.Start(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, StartInterviewResponse{
		SessionID:  sess.ID,
		Transcript: visibleTurns(sess.Transcript),
	})
}

func (h *InterviewHandler) Message(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Message", "invalid request body", err))
		return
	}

	res, err := h.svc.Message(c.Request.Context(), sessionID, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *InterviewHandler) Reset(c *gin.Context) {
	sessionID := c.Param("session_id")

	sess, err := h.svc.Reset(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, StartInterviewResponse{
		SessionID:  sess.ID,
		Transcript: visibleTurns(sess.Transcript),
	})
}

type TranscriptResponse struct {
	SessionID  string            `json:"session_id"`
	Transcript []interview.Turn  `json:"transcript"`
	Captured   interview.Profile `json:"captured"`
	Complete   bool              `json:"complete"`
	Persisted  bool              `json:"persisted"`
}

func (h *InterviewHandler) Get(c *gin.Context) {
	sessionID := c.Param("session_id")

	sess, err := h.svc.Get(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	c.JSON(http.StatusOK, TranscriptResponse{
		SessionID:  sess.ID,
		Transcript: visibleTurns(sess.Transcript),
		Captured:   sess.Captured,
		Complete:   interview.Complete(sess),
		Persisted:  sess.Persisted,
	})
}

// visibleTurns drops the system prompt; the UI renders user and assistant
// turns only.
func visibleTurns(transcript []interview.Turn) []interview.Turn {
	out := make([]interview.Turn, 0, len(transcript))
	for _, t := range transcript {
		if t.Role == interview.RoleSystem {
			continue
		}
		out = append(out, t)
	}
	return out
}
