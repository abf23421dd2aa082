package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/calmora/internal/config"
	"github.com/MKhiriev/calmora/internal/handler"
	"github.com/MKhiriev/calmora/internal/logger"
	"github.com/MKhiriev/calmora/internal/service"
	"github.com/MKhiriev/calmora/internal/store"
	"github.com/MKhiriev/calmora/models"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	services := service.NewServices(store.NewServerStorages(), models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	handlers, err := handler.NewHandlers(services, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AddressInUse(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	first, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)
	defer first.Shutdown()

	busy := config.Server{HTTPAddress: first.(*server).httpServer.addr()}
	_, err = NewServer(newTestHandlers(t, busy), busy, logger.Nop())
	assert.Error(t, err)
}

func TestServer_RunServesAndStops(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() { stopped <- srv.Run(ctx) }()

	resp, err := http.Get("http://" + srv.(*server).httpServer.addr() + "/session-status")
	require.NoError(t, err)
	defer resp.Body.Close()

	var status models.SessionStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.False(t, status.LoggedIn)

	cancel()
	select {
	case err = <-stopped:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
