package nats

import natspkg "github.com/nats-io/nats.go"

type Config struct {
	URL  string
	Name string
}

type natsImpl struct {
	nc *natspkg.Conn
}
