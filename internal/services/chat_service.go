package services

import (
	"context"
	"strings"

	"wayfare/pkg/utils"
)

type ChatServiceInterface interface {
	Reply(ctx context.Context, message string) (string, error)
}

// ChatService is a plain passthrough to the generation client with the
// travel-assistant persona; no history is kept between messages.
type ChatService struct {
	generator utils.GenerationClientInterface
}

func NewChatService(generator utils.GenerationClientInterface) ChatServiceInterface {
	return &ChatService{
		generator: generator,
	}
}

func (c *ChatService) Reply(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", utils.NewFieldError("message", "Message is required")
	}

	return c.generator.GenerateChatReply(ctx, message)
}
