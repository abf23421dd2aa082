// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost", addr: NetAddress{Host: "localhost", Port: 5000}, expected: "localhost:5000"},
		{name: "ipv4", addr: NetAddress{Host: "127.0.0.1", Port: 8080}, expected: "127.0.0.1:8080"},
		{name: "port only", addr: NetAddress{Port: 9000}, expected: ":9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantErr      bool
		expectedHost string
		expectedPort int
	}{
		{name: "localhost", input: "localhost:5000", expectedHost: "localhost", expectedPort: 5000},
		{name: "ipv4", input: "0.0.0.0:8080", expectedHost: "0.0.0.0", expectedPort: 8080},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "hostname instead of ip", input: "example.com:80", wantErr: true},
		{name: "too many colons", input: "a:b:c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, NetAddress{}, addr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

func TestParseFlags(t *testing.T) {
	// Act
	cfg, err := parseFlags([]string{
		"-a", "https://calmora.example.com",
		"-request-timeout", "45s",
		"-d", ":memory:",
		"-log-level", "warn",
		"-log-file", "client.log",
		"-server-address", "127.0.0.1:5001",
		"-server-timeout", "5s",
		"-config", "cfg.json",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://calmora.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "127.0.0.1:5001", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidServerAddress(t *testing.T) {
	cfg, err := parseFlags([]string{"-server-address", "nohost"})

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-grpc-address", "localhost:9090"})

	require.Error(t, err)
}
