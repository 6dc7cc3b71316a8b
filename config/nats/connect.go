package nats

import (
	"fmt"

	"chat-notification-srv/config"
	pkgNats "chat-notification-srv/pkg/nats"
)

var client pkgNats.INats

// Connect initializes and returns a NATS client
func Connect(cfg config.NATSConfig) (pkgNats.INats, error) {
	var err error
	client, err = pkgNats.New(clientConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return client, nil
}

// Disconnect drains pending messages and closes the NATS connection
func Disconnect() error {
	if client != nil {
		return client.Drain()
	}
	return nil
}

// clientConfig maps service config to the client; an empty name falls back to the package default.
func clientConfig(cfg config.NATSConfig) pkgNats.Config {
	name := cfg.ClientName
	if name == "" {
		name = pkgNats.DefaultClientName
	}
	return pkgNats.Config{
		URL:  cfg.URL,
		Name: name,
	}
}
