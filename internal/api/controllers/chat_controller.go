package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Chat handles POST /chat.
func (cc *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondDetail(c, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := cc.chatService.Reply(c.Request.Context(), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
