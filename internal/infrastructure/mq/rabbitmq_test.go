package mq

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-record-service/config"
)

func TestPublisherWorker_ShutdownLeavesInputChannelOpen(t *testing.T) {
	r := New(config.MQ{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		r.PublisherWorker(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher worker did not stop on context cancel")
	}

	// a handler finishing during the shutdown window may still publish;
	// sending must not panic on a closed channel
	require.NotPanics(t, func() {
		r.GetInputChan() <- Event{
			Id:     uuid.New(),
			TS:     time.Now(),
			Method: http.MethodPost,
			UserID: 1,
		}
	})
	assert.Len(t, r.GetInputChan(), 1)
}
