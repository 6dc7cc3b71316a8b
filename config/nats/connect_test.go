package nats

import (
	"testing"

	"chat-notification-srv/config"
	pkgNats "chat-notification-srv/pkg/nats"
)

func TestClientConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.NATSConfig
		wantName string
	}{
		{
			name:     "explicit client name",
			cfg:      config.NATSConfig{URL: "nats://localhost:4222", Queue: "workers", ClientName: "notifier-1"},
			wantName: "notifier-1",
		},
		{
			name:     "queue is not used as name",
			cfg:      config.NATSConfig{URL: "nats://localhost:4222", Queue: "workers"},
			wantName: pkgNats.DefaultClientName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clientConfig(tt.cfg)
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.URL != tt.cfg.URL {
				t.Errorf("URL = %q, want %q", got.URL, tt.cfg.URL)
			}
		})
	}
}
