package domain

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Shop магазин (ресторан) и его конфигурация
type Shop struct {
	ID          int64
	AreaID      int64
	AreaName    string
	Name        string
	Address     string
	OpenTime    types.TimeString
	CloseTime   types.TimeString
	SeatsNumber int
	Courses     []Course
}

// Course курс (меню) магазина
type Course struct {
	ID       int64
	ShopID   int64
	Name     string
	Price    decimal.Decimal
	Duration int // минуты, справочно
}

// OpenSlotCount количество получасовых слотов между открытием и закрытием
// Возвращает 0, если время работы задано некорректно
func (s *Shop) OpenSlotCount() int {
	open, err := s.OpenTime.Minutes()
	if err != nil {
		return 0
	}
	closeAt, err := s.CloseTime.Minutes()
	if err != nil || closeAt <= open {
		return 0
	}
	return (closeAt - open) / SlotDurationMinutes
}

// MaxReservableCount максимальное число "человеко-слотов" за день: места * слоты
func (s *Shop) MaxReservableCount() int {
	return s.SeatsNumber * s.OpenSlotCount()
}

// CoursePrice цена курса; если курс не найден - ноль
func (s *Shop) CoursePrice(courseID int64) decimal.Decimal {
	for _, c := range s.Courses {
		if c.ID == courseID {
			return c.Price
		}
	}
	return decimal.Zero
}
