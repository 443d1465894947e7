package ports

import "context"

// RMQConsumer drains the user change-event queue.
type RMQConsumer interface {
	Connect(dsn string) error
	Init() error
	DeliveryWorker(ctx context.Context)
}
