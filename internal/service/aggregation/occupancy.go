package aggregation

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// Classify определяет заполненность дня по доле занятых мест
// maxReservable должен быть положительным
func Classify(totalReserved float64, maxReservable int) domain.OccupancyLevel {
	proportion := totalReserved / float64(maxReservable)

	switch {
	case proportion < domain.ReservedMuchProportion:
		return domain.OccupancyAvailableMuch
	case proportion < domain.ReservedFullProportion:
		return domain.OccupancyAvailableFew
	default:
		return domain.OccupancyAvailableNothing
	}
}
