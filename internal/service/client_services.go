package service

import (
	"github.com/MKhiriev/calmora/internal/adapter"
	"github.com/MKhiriev/calmora/internal/logger"
)

type ClientServices struct {
	AuthService ClientAuthService
	ChatService ClientChatService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, logger),
		ChatService: NewClientChatService(serverAdapter, logger),
	}
}
