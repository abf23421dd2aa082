package service

import (
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/store"
	"github.com/MKhiriev/calmora/models"
)

type Services struct {
	AuthService    AuthService
	ChatService    ChatService
	AppInfoService AppInfoService
}

func NewServices(storages *store.ServerStorages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthValidationService().Wrap(NewAuthService(storages, logger)),
		ChatService:    NewChatService(logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
