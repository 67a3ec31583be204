package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается, если дата бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: reservation date is in the past")

	// ErrShopNotFound возвращается, когда магазин не найден
	ErrShopNotFound = errors.New("create_reservation: shop not found")

	// ErrOutsideOpeningHours возвращается, если время бронирования выходит за часы работы
	ErrOutsideOpeningHours = errors.New("create_reservation: reservation is outside opening hours")

	// ErrShopUnavailable возвращается, когда у магазина нулевая вместимость
	ErrShopUnavailable = errors.New("create_reservation: shop has no capacity")

	// ErrBusy возвращается, когда день магазина слишком долго занят параллельными запросами
	ErrBusy = errors.New("create_reservation: day is busy, try again")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
