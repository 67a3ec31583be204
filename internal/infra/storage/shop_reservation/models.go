package shop_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// UpdateParams параметры условного обновления записи дня
type UpdateParams struct {
	ShopID             int64
	ReservedDay        time.Time
	Slots              domain.SlotSet
	TotalReservedCount int
	OccupancyLevel     domain.OccupancyLevel
	ExpectedVersion    int64 // версия, прочитанная до слияния
}
