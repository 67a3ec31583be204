package shops

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ShopRepository интерфейс репозитория магазинов
type ShopRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
	List(ctx context.Context) ([]*domain.Shop, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
