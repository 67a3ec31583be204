package lock

import "errors"

var (
	// ErrLockTimeout возвращается, когда блокировку не удалось получить за отведенное время
	ErrLockTimeout = errors.New("lock: timed out waiting for lock")

	// ErrLockBackend возвращается при ошибках Redis
	ErrLockBackend = errors.New("lock: backend error")
)
