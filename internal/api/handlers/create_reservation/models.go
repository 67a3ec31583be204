package create_reservation

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/identity"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ShopID                  int64  `json:"shopId"`
	ShopName                string `json:"shopName"`
	CourseID                int64  `json:"courseId"`
	CourseName              string `json:"courseName"`
	UserName                string `json:"userName"`
	ReservationDate         string `json:"reservationDate"`      // "2024-05-10"
	ReservationStarttime    string `json:"reservationStarttime"` // "18:00"
	ReservationEndtime      string `json:"reservationEndtime"`   // "19:30"
	ReservationPeopleNumber int    `json:"reservationPeopleNumber"`

	// Клиент дублирует токен и локаль в теле. Пользователь берется только из заголовка Authorization
	IDToken string `json:"idToken,omitempty"`
	Locale  string `json:"locale,omitempty"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	ReservationID string `json:"reservationId"`
}

var (
	errInvalidDate = errors.New("invalid reservationDate")
	errInvalidTime = errors.New("invalid reservation time")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Если имя не передано, берется имя из ID-токена
func (r *CreateReservationRequest) ToUseCaseRequest(profile *identity.Profile) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.ReservationDate)
	if err != nil {
		return nil, errInvalidDate
	}

	start, err := types.NewTimeStringFromString(r.ReservationStarttime)
	if err != nil {
		return nil, errInvalidTime
	}
	end, err := types.NewTimeStringFromString(r.ReservationEndtime)
	if err != nil {
		return nil, errInvalidTime
	}

	userName := r.UserName
	if userName == "" {
		userName = profile.Name
	}

	return &createReservation.Request{
		UserID:       profile.Subject,
		UserName:     userName,
		ShopID:       r.ShopID,
		ShopName:     r.ShopName,
		CourseID:     r.CourseID,
		CourseName:   r.CourseName,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		PeopleNumber: r.ReservationPeopleNumber,
	}, nil
}
