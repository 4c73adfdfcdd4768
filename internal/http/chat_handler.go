package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"counselling-site/internal/domain"
	"counselling-site/internal/service"
)

// ChatHandler holds dependencies for the chat assistant endpoint.
type ChatHandler struct {
	logger  *zap.Logger
	chatSvc *service.ChatService
}

// NewChatHandler creates a ChatHandler with its dependencies.
func NewChatHandler(logger *zap.Logger, chatSvc *service.ChatService) *ChatHandler {
	return &ChatHandler{
		logger:  logger,
		chatSvc: chatSvc,
	}
}

// ChatCompletion handles POST /chat-completion. Provider failures are folded
// into the reply content, so well-formed requests always get a 200.
func (h *ChatHandler) ChatCompletion(c *gin.Context) {
	var req struct {
		Messages []struct {
			Role    string `json:"role" binding:"required,oneof=user assistant"`
			Content string `json:"content"`
		} `json:"messages" binding:"omitempty,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	messages := make([]domain.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, domain.ChatMessage{Role: m.Role, Content: m.Content})
	}

	reply := h.chatSvc.Reply(c.Request.Context(), messages)
	c.JSON(http.StatusOK, reply)
}
