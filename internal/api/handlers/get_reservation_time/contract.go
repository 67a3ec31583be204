package get_reservation_time

import (
	"context"

	getReservationTime "github.com/m04kA/SMC-ReservationService/internal/usecase/get_reservation_time"
)

type GetReservationTimeUseCase interface {
	Execute(ctx context.Context, req *getReservationTime.Request) (*getReservationTime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
