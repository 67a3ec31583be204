package get_reservation_time

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// DayAggregateRepository интерфейс репозитория сводок по дням
type DayAggregateRepository interface {
	Get(ctx context.Context, shopID int64, day time.Time) (*domain.DayAggregate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
