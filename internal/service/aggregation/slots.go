package aggregation

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Divide делит интервал бронирования на получасовые слоты
// Слоты идут от start с шагом 30 минут, пока конец слота не выходит за end.
// Остаток короче 30 минут отбрасывается. total = partyCount * количество слотов
func Divide(start, end types.TimeString, partyCount int) ([]domain.TimeSlot, int) {
	slots := make([]domain.TimeSlot, 0)
	total := 0

	cursor := start
	for {
		slotEnd, err := cursor.AddMinutes(domain.SlotDurationMinutes)
		if err != nil || slotEnd.IsAfter(end) {
			break
		}

		slots = append(slots, domain.TimeSlot{
			StartTime:     cursor,
			EndTime:       slotEnd,
			ReservedCount: partyCount,
		})
		total += partyCount
		cursor = slotEnd
	}

	return slots, total
}

// Merge сливает новые слоты с уже существующей записью дня
// Если записи нет, возвращает новые слоты как есть.
// Совпадающие по времени начала слоты суммируются, остальные добавляются.
// existing не изменяется
func Merge(existing *domain.DayAggregate, newSlots []domain.TimeSlot, newTotal int) (domain.SlotSet, int) {
	if existing == nil {
		return domain.NewSlotSet(newSlots), newTotal
	}

	merged := existing.Slots.Clone()
	if merged == nil {
		merged = make(domain.SlotSet, len(newSlots))
	}

	for _, slot := range newSlots {
		if current, ok := merged[slot.StartTime]; ok {
			current.ReservedCount += slot.ReservedCount
			merged[slot.StartTime] = current
			continue
		}
		merged[slot.StartTime] = slot
	}

	return merged, existing.TotalReservedCount + newTotal
}
