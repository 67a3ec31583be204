package aggregation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request бронирование, которое нужно учесть в сводке дня
type Request struct {
	ShopID     int64
	Day        time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	PartyCount int
}

// Config параметры сервиса агрегации
type Config struct {
	MaxMergeRetries int // повторов после конфликта версий
	RetentionDays   int // сколько дней хранить запись после даты бронирования
}
