package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/lock"
	"github.com/m04kA/SMC-ReservationService/internal/service/aggregation"
)

// ShopRepository интерфейс репозитория магазинов
type ShopRepository interface {
	GetByID(ctx context.Context, shopID int64) (*domain.Shop, error)
}

// AggregationService интерфейс сервиса сводок по дням
type AggregationService interface {
	RecordReservation(ctx context.Context, req aggregation.Request, shop *domain.Shop) (*domain.DayAggregate, error)
}

// ReservationRepository интерфейс репозитория бронирований клиентов
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// RemindRepository интерфейс outbox напоминаний
type RemindRepository interface {
	Insert(ctx context.Context, msg *domain.RemindMessage) error
}

// Locker интерфейс блокировки дня магазина
type Locker interface {
	Lock(ctx context.Context, key string) (lock.Unlock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
