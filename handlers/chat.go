package handlers

import (
	"net/http"
	"strings"

	"musebot/models"
	"musebot/services/dialogue"
	"musebot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the dialogue engine over HTTP.
type ChatHandler struct {
	svc dialogue.DialogueService
}

// NewChatHandler returns a handler bound to the given dialogue service.
func NewChatHandler(svc dialogue.DialogueService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// HandleChat processes one user message. A request without a session ID
// opens a new conversation; the welcome message is returned alongside the
// reply to any text the request carried.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid chat request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	var replies []models.ReplyEvent
	sessionID := req.SessionID

	if sessionID == "" {
		session, welcome, err := h.svc.StartSession(c.Request.Context())
		if err != nil {
			logger.Error("Failed to start chat session", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to start session", err.Error())
			return
		}
		sessionID = session.SessionID
		replies = welcome
	}

	if strings.TrimSpace(req.Text) != "" {
		turn, err := h.svc.HandleUtterance(c.Request.Context(), sessionID, req.Text)
		if err != nil {
			logger.Error("Failed to handle utterance",
				zap.String("sessionID", sessionID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
			return
		}
		replies = append(replies, turn...)
	}

	c.JSON(http.StatusOK, models.ChatResponse{SessionID: sessionID, Replies: replies})
}

// ResetSession drops the conversation state for a session.
func (h *ChatHandler) ResetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.svc.ResetSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset", "sessionId": sessionID})
}
