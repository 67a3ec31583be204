package aggregation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	shopReservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/shop_reservation"
)

// DayAggregateRepository хранилище сводок бронирований по дням
type DayAggregateRepository interface {
	Get(ctx context.Context, shopID int64, day time.Time) (*domain.DayAggregate, error)
	Insert(ctx context.Context, agg *domain.DayAggregate) error
	Update(ctx context.Context, params shopReservationRepo.UpdateParams) error
}

// MetricsRecorder счетчики записи агрегатов
type MetricsRecorder interface {
	RecordReservation(write string)
	RecordMergeConflict(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
