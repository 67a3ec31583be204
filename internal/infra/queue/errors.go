package queue

import "errors"

var (
	// ErrConnect возвращается, если не удалось подключиться к брокеру
	ErrConnect = errors.New("queue: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации сообщения
	ErrPublish = errors.New("queue: failed to publish message")

	// ErrClosed возвращается при публикации через закрытый издатель
	ErrClosed = errors.New("queue: publisher is closed")
)
