package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Unlock освобождает ранее взятую блокировку
type Unlock func(ctx context.Context) error

// DayKey ключ блокировки записи дня магазина
func DayKey(shopID int64, day time.Time) string {
	return fmt.Sprintf("lock:shop-reservation:%d:%s", shopID, day.Format(domain.DateFormat))
}

// NoopLocker используется, когда Redis отключен
// Корректность тогда обеспечивается только проверкой версии при обновлении
type NoopLocker struct{}

func (NoopLocker) Lock(context.Context, string) (Unlock, error) {
	return func(context.Context) error { return nil }, nil
}
