package get_shop_calendar

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// DayAggregateRepository интерфейс репозитория сводок по дням
type DayAggregateRepository interface {
	GetByYearMonth(ctx context.Context, shopID int64, yearMonth string) ([]*domain.DayAggregate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
