package get_shop_calendar

import (
	"context"

	getShopCalendar "github.com/m04kA/SMC-ReservationService/internal/usecase/get_shop_calendar"
)

type GetShopCalendarUseCase interface {
	Execute(ctx context.Context, req *getShopCalendar.Request) (*getShopCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
