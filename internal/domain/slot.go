package domain

import (
	"sort"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// TimeSlot получасовой фрагмент бронирования
// EndTime всегда равен StartTime + 30 минут
type TimeSlot struct {
	StartTime     types.TimeString `json:"reservedStartTime"`
	EndTime       types.TimeString `json:"reservedEndTime"`
	ReservedCount int              `json:"reservedNumber"`
}

// SlotSet слоты дня, ключ - время начала слота
type SlotSet map[types.TimeString]TimeSlot

// NewSlotSet собирает SlotSet из списка слотов
// Слоты с одинаковым временем начала суммируются
func NewSlotSet(slots []TimeSlot) SlotSet {
	set := make(SlotSet, len(slots))
	for _, slot := range slots {
		if existing, ok := set[slot.StartTime]; ok {
			existing.ReservedCount += slot.ReservedCount
			set[slot.StartTime] = existing
			continue
		}
		set[slot.StartTime] = slot
	}
	return set
}

// Clone возвращает независимую копию
func (s SlotSet) Clone() SlotSet {
	clone := make(SlotSet, len(s))
	for k, v := range s {
		clone[k] = v
	}
	return clone
}

// Total сумма ReservedCount по всем слотам
func (s SlotSet) Total() int {
	total := 0
	for _, slot := range s {
		total += slot.ReservedCount
	}
	return total
}

// Sorted возвращает слоты по возрастанию времени начала
func (s SlotSet) Sorted() []TimeSlot {
	result := make([]TimeSlot, 0, len(s))
	for _, slot := range s {
		result = append(result, slot)
	}
	// HH:MM сравнивается лексикографически
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime < result[j].StartTime
	})
	return result
}
