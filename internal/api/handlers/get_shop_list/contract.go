package get_shop_list

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/shops/models"
)

type ShopService interface {
	ListByArea(ctx context.Context) ([]models.AreaShopsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
