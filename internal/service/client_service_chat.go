package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calmora/internal/adapter"
	"github.com/MKhiriev/calmora/internal/logger"
)

type clientChatService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientChatService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientChatService {
	return &clientChatService{adapter: serverAdapter, logger: logger}
}

func (c *clientChatService) Send(ctx context.Context, text string) (string, error) {
	reply, err := c.adapter.Chat(ctx, text)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	c.logger.Debug().Int("reply_len", len(reply)).Msg("chat reply received")
	return reply, nil
}
