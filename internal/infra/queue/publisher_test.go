package queue

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher_InvalidURL(t *testing.T) {
	p, err := NewPublisher("not-an-amqp-url", "restaurant.remind")

	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrConnect)
}

func TestPublisher_PublishAfterClose(t *testing.T) {
	p := &Publisher{url: "amqp://localhost:5672/", queue: "restaurant.remind"}

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	err := p.Publish(context.Background(), "id", []byte(`{}`))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestPublisher_NeedsReconnect(t *testing.T) {
	tests := []struct {
		name string
		p    *Publisher
		want bool
	}{
		{name: "never connected", p: &Publisher{}, want: true},
		{name: "channel lost", p: &Publisher{conn: &amqp.Connection{}}, want: true},
		{name: "connection lost", p: &Publisher{ch: &amqp.Channel{}}, want: true},
		{name: "both open", p: &Publisher{conn: &amqp.Connection{}, ch: &amqp.Channel{}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.needsReconnect())
		})
	}
}

func TestPublisher_PublishReconnectsWithoutChannel(t *testing.T) {
	p := &Publisher{url: "not-an-amqp-url", queue: "restaurant.remind"}

	err := p.Publish(context.Background(), "id", []byte(`{}`))

	assert.ErrorIs(t, err, ErrConnect)
	assert.Nil(t, p.ch)
	assert.Nil(t, p.conn)
}
