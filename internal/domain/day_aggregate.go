package domain

import "time"

// OccupancyLevel грубая оценка заполненности дня
// Числовые значения совпадают с флагом vacancyFlg, который отдается календарю
type OccupancyLevel int

const (
	OccupancyAvailableNothing OccupancyLevel = 0
	OccupancyAvailableMuch    OccupancyLevel = 1
	OccupancyAvailableFew     OccupancyLevel = 2
)

func (l OccupancyLevel) String() string {
	switch l {
	case OccupancyAvailableNothing:
		return "AVAILABLE_NOTHING"
	case OccupancyAvailableMuch:
		return "AVAILABLE_MUCH"
	case OccupancyAvailableFew:
		return "AVAILABLE_FEW"
	default:
		return "UNKNOWN"
	}
}

// DayAggregate сводка бронирований магазина за один день
// Инвариант: TotalReservedCount == Slots.Total()
type DayAggregate struct {
	ShopID             int64
	ReservedDay        time.Time
	ReservedYearMonth  string // YYYY-MM, для выборки календаря
	Slots              SlotSet
	TotalReservedCount int
	OccupancyLevel     OccupancyLevel
	ExpirationTime     time.Time
	Version            int64 // счетчик оптимистичной блокировки
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// YearMonthOf возвращает YYYY-MM для даты
func YearMonthOf(day time.Time) string {
	return day.Format(YearMonthFormat)
}

// ExpirationOf возвращает момент, после которого запись дня можно удалить
func ExpirationOf(day time.Time, retentionDays int) time.Time {
	dayOnly := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return dayOnly.AddDate(0, 0, retentionDays)
}
