package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Reservation бронирование клиента
type Reservation struct {
	ID              uuid.UUID
	ShopID          int64
	ShopName        string
	UserID          string // subject из ID-токена
	UserName        string
	CourseID        int64
	CourseName      string
	PeopleNumber    int
	ReservationDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Amount          decimal.Decimal
	ExpirationTime  time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RemindMessage напоминание о визите, ожидающее отправки (outbox)
type RemindMessage struct {
	ID          uuid.UUID
	UserID      string
	ChannelID   string
	SendDate    time.Time
	Payload     []byte // JSON сообщения
	Published   bool
	PublishedAt *time.Time
	CreatedAt   time.Time
}
