package get_course_list

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/shops/models"
)

type ShopService interface {
	GetCourses(ctx context.Context, shopID int64) ([]models.CourseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
