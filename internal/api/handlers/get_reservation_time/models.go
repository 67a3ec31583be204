package get_reservation_time

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getReservationTime "github.com/m04kA/SMC-ReservationService/internal/usecase/get_reservation_time"
)

// ReservedSlotResponse HTTP response model
type ReservedSlotResponse struct {
	ReservedStartTime string `json:"reservedStartTime"`
	ReservedEndTime   string `json:"reservedEndTime"`
	ReservedNumber    int    `json:"reservedNumber"`
}

// ToUseCaseRequest формирует запрос к use case с парсингом даты
func ToUseCaseRequest(shopID int64, preferredDay string) (*getReservationTime.Request, error) {
	day, err := time.Parse(domain.DateFormat, preferredDay)
	if err != nil {
		return nil, err
	}
	return &getReservationTime.Request{ShopID: shopID, Day: day}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getReservationTime.Response) []ReservedSlotResponse {
	result := make([]ReservedSlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		result = append(result, ReservedSlotResponse{
			ReservedStartTime: s.StartTime.String(),
			ReservedEndTime:   s.EndTime.String(),
			ReservedNumber:    s.ReservedCount,
		})
	}
	return result
}
