package aggregation

import "errors"

var (
	// ErrInvalidCapacity возвращается, когда из конфигурации магазина получается нулевая вместимость
	ErrInvalidCapacity = errors.New("aggregation: shop capacity must be positive")

	// ErrConcurrentUpdate возвращается, когда запись дня так и не удалось обновить из-за параллельных изменений
	ErrConcurrentUpdate = errors.New("aggregation: day aggregate is being updated concurrently")
)
