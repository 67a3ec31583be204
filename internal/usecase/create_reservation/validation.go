package create_reservation

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shopId must be positive", ErrInvalidInput)
	}

	if req.CourseID <= 0 {
		return fmt.Errorf("%w: courseId must be positive", ErrInvalidInput)
	}

	if err := validateName("shopName", req.ShopName); err != nil {
		return err
	}
	if err := validateName("courseName", req.CourseName); err != nil {
		return err
	}
	if err := validateName("userName", req.UserName); err != nil {
		return err
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: reservationDate is required", ErrInvalidInput)
	}

	if req.PeopleNumber <= 0 || req.PeopleNumber > domain.MaxPeopleNumber {
		return fmt.Errorf("%w: reservationPeopleNumber must be between 1 and %d", ErrInvalidInput, domain.MaxPeopleNumber)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid reservationStarttime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid reservationEndtime: %v", ErrInvalidInput, err)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: reservationStarttime must be before reservationEndtime", ErrInvalidInput)
	}

	return nil
}

func validateName(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > domain.MaxNameLength {
		return fmt.Errorf("%w: %s is longer than %d characters", ErrInvalidInput, field, domain.MaxNameLength)
	}
	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateOpeningHours проверяет, что интервал лежит внутри часов работы магазина
func validateOpeningHours(shop *domain.Shop, start, end types.TimeString) error {
	if start.IsBefore(shop.OpenTime) || end.IsAfter(shop.CloseTime) {
		return fmt.Errorf("%w: %s-%s is outside %s-%s",
			ErrOutsideOpeningHours, start, end, shop.OpenTime, shop.CloseTime)
	}
	return nil
}
