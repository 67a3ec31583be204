package get_reservation_time

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса
type Request struct {
	ShopID int64
	Day    time.Time
}

// Response занятость дня по получасовым слотам
type Response struct {
	Slots []Slot
}

// Slot получасовой слот с количеством забронированных мест
type Slot struct {
	StartTime     types.TimeString
	EndTime       types.TimeString
	ReservedCount int
}
