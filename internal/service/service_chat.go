package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/validators"
	"github.com/MKhiriev/calmora/models"
)

// ReplyAcknowledgement is the development responder's reply to every
// message.
const ReplyAcknowledgement = "Thank you for sharing that with me. I'm here to listen. Could you tell me a bit more about how you're feeling?"

// chatService is a stand-in responder: it validates the message and answers
// with a fixed acknowledgement.
type chatService struct {
	validator validators.Validator
	logger    *logger.Logger
}

func NewChatService(logger *logger.Logger) ChatService {
	return &chatService{
		validator: validators.NewAccountValidator(),
		logger:    logger,
	}
}

func (c *chatService) Reply(ctx context.Context, email, message string) (string, error) {
	req := models.ChatRequest{Message: strings.TrimSpace(message)}
	if err := c.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("error during chat validation: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("email", email).
		Int("message_len", len(req.Message)).
		Msg("chat message received")

	return ReplyAcknowledgement, nil
}
