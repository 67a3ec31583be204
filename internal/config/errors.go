package config

import "errors"

var (
	// ErrLoadConfig возвращается, если конфигурацию не удалось прочитать
	ErrLoadConfig = errors.New("config: failed to load")

	// ErrInvalidConfig возвращается при некорректных значениях
	ErrInvalidConfig = errors.New("config: invalid value")
)
