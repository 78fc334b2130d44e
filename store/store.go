package store

import (
	"context"
	"time"
)

var (
	ContextTimeout = time.Duration(20) * time.Second
)

// Pinger reports whether the configured backend accepts requests.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func NewDbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ContextTimeout)
}
