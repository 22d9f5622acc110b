package storage_test

import (
	"testing"

	"gamedata-manager/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{
			name: "Plain Endpoint",
			cfg: storage.Config{
				Endpoint:  "localhost:9000",
				AccessKey: "gamedata",
				SecretKey: "gamedata-secret",
				Bucket:    "game-assets",
			},
		},
		{
			// The scheme must be stripped before it reaches minio.
			name: "HTTP Scheme In Endpoint",
			cfg: storage.Config{
				Endpoint:  "http://localhost:9000",
				AccessKey: "gamedata",
				SecretKey: "gamedata-secret",
			},
		},
		{
			name: "HTTPS Scheme In Endpoint",
			cfg: storage.Config{
				Endpoint:  "https://s3.amazonaws.com",
				AccessKey: "gamedata",
				SecretKey: "gamedata-secret",
				UseSSL:    true,
				Region:    "us-east-1",
			},
		},
		{
			// A zero timeout falls back to the 30 second default.
			name: "Missing Timeout",
			cfg: storage.Config{
				Endpoint:       "localhost:9000",
				AccessKey:      "gamedata",
				SecretKey:      "gamedata-secret",
				TimeoutSeconds: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}
