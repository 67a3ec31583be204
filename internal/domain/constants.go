package domain

import "time"

// Параметры агрегации бронирований
const (
	SlotDurationMinutes = 30
	SlotDuration        = SlotDurationMinutes * time.Minute

	// Доля занятости, начиная с которой мест "мало"
	ReservedMuchProportion = 0.8
	// Доля занятости, начиная с которой мест нет
	ReservedFullProportion = 1.0
)

// Значения конфигурации по умолчанию
const (
	DefaultRetentionDays        = 1
	DefaultRemindDateDifference = -1 // за день до визита
	DefaultMaxMergeRetries      = 3
	OnDayRemindDateDifference   = 0
)

// Business validation constants
const (
	MaxPeopleNumber = 100
	MaxNameLength   = 100
	MaxTokenLength  = 4096
)

// Time format constants
const (
	TimeFormat      = "15:04"      // HH:MM
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	YearMonthFormat = "2006-01"    // YYYY-MM
)
