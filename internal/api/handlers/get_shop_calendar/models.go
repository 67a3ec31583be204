package get_shop_calendar

import getShopCalendar "github.com/m04kA/SMC-ReservationService/internal/usecase/get_shop_calendar"

// CalendarResponse HTTP response model
type CalendarResponse struct {
	ReservedYearMonth string             `json:"reservedYearMonth"`
	ReservedDays      []ReservedDayModel `json:"reservedDays"`
}

// ReservedDayModel день с бронированиями и флагом заполненности
type ReservedDayModel struct {
	Day        int `json:"day"`
	VacancyFlg int `json:"vacancyFlg"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getShopCalendar.Response) *CalendarResponse {
	days := make([]ReservedDayModel, 0, len(resp.ReservedDays))
	for _, d := range resp.ReservedDays {
		days = append(days, ReservedDayModel{Day: d.Day, VacancyFlg: d.VacancyFlg})
	}
	return &CalendarResponse{
		ReservedYearMonth: resp.ReservedYearMonth,
		ReservedDays:      days,
	}
}
