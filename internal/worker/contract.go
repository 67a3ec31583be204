package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// RemindRepository outbox напоминаний
type RemindRepository interface {
	GetDue(ctx context.Context, day time.Time, limit uint64) ([]*domain.RemindMessage, error)
	MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Publisher публикует сообщение в брокер
type Publisher interface {
	Publish(ctx context.Context, messageID string, body []byte) error
}

// ExpiredDeleter удаляет устаревшие сводки дней
type ExpiredDeleter interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// MetricsRecorder счетчик публикаций напоминаний
type MetricsRecorder interface {
	RecordReminder(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
