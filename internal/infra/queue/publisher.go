package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher публикует сообщения в durable-очередь через default exchange
type Publisher struct {
	mu    sync.Mutex
	url   string
	queue string
	conn  *amqp.Connection
	ch    *amqp.Channel

	closed bool
}

// NewPublisher подключается к брокеру и объявляет очередь
func NewPublisher(url, queue string) (*Publisher, error) {
	p := &Publisher{url: url, queue: queue}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	// durable, чтобы сообщения переживали рестарт брокера
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("%w: declare queue %s: %v", ErrConnect, p.queue, err)
	}

	p.conn = conn
	p.ch = ch
	return nil
}

// Publish отправляет JSON-сообщение с пометкой persistent
// Если соединение или канал были закрыты, переподключается один раз
func (p *Publisher) Publish(ctx context.Context, messageID string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	if p.needsReconnect() {
		p.dropConnection()
		if err := p.connect(); err != nil {
			return err
		}
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("%w: queue=%s id=%s: %v", ErrPublish, p.queue, messageID, err)
	}

	return nil
}

// канал брокер может закрыть отдельно от соединения
func (p *Publisher) needsReconnect() bool {
	return p.conn == nil || p.conn.IsClosed() || p.ch == nil || p.ch.IsClosed()
}

func (p *Publisher) dropConnection() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
