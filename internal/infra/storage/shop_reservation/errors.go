package shop_reservation

import "errors"

var (
	// ErrDayNotFound возвращается, когда для магазина нет записи на указанный день
	ErrDayNotFound = errors.New("shop_reservation.repository: day aggregate not found")

	// ErrAlreadyExists возвращается, когда запись дня уже создана другим запросом
	ErrAlreadyExists = errors.New("shop_reservation.repository: day aggregate already exists")

	// ErrVersionConflict возвращается, когда запись дня изменилась после чтения
	ErrVersionConflict = errors.New("shop_reservation.repository: day aggregate version conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("shop_reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("shop_reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("shop_reservation.repository: failed to scan row")

	// ErrEncodeSlots возвращается при ошибке (де)сериализации слотов
	ErrEncodeSlots = errors.New("shop_reservation.repository: failed to encode slots")
)
