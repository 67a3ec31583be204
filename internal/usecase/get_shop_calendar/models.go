package get_shop_calendar

// Request модель запроса календаря
type Request struct {
	ShopID             int64
	PreferredYearMonth string // YYYY-MM
}

// Response модель ответа календаря
type Response struct {
	ReservedYearMonth string
	ReservedDays      []ReservedDay
}

// ReservedDay день месяца, в котором есть бронирования
type ReservedDay struct {
	Day        int // число месяца
	VacancyFlg int // domain.OccupancyLevel
}
