package nats

import natspkg "github.com/nats-io/nats.go"

func (c *natsImpl) QueueSubscribe(subject, queue string, handler func(data []byte)) (*natspkg.Subscription, error) {
	return c.nc.QueueSubscribe(subject, queue, func(msg *natspkg.Msg) {
		handler(msg.Data)
	})
}

func (c *natsImpl) IsConnected() bool {
	return c.nc != nil && c.nc.Status() == natspkg.CONNECTED
}

func (c *natsImpl) Drain() error {
	return c.nc.Drain()
}

func (c *natsImpl) Close() {
	c.nc.Close()
}
