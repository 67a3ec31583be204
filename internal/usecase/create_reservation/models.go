package create_reservation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса на бронирование
type Request struct {
	UserID       string           // subject ID-токена
	UserName     string           // имя гостя
	ShopID       int64            // ID магазина
	ShopName     string           // название магазина, как его видел пользователь
	CourseID     int64            // ID курса
	CourseName   string           // название курса
	Date         time.Time        // день визита (без времени)
	StartTime    types.TimeString // начало, HH:MM
	EndTime      types.TimeString // конец, HH:MM
	PeopleNumber int              // количество гостей
}

// Response модель ответа
type Response struct {
	ReservationID  uuid.UUID
	Amount         decimal.Decimal
	OccupancyLevel int
}

// Config параметры use case
type Config struct {
	ChannelID            string // канал, в который уходят напоминания
	RemindDateDifference int    // смещение второго напоминания, дни
	RetentionDays        int
}
