package get_shop_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shopId must be positive", ErrInvalidInput)
	}

	if req.PreferredYearMonth == "" {
		return fmt.Errorf("%w: preferredYearMonth is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.YearMonthFormat, req.PreferredYearMonth); err != nil {
		return fmt.Errorf("%w: preferredYearMonth must be YYYY-MM", ErrInvalidInput)
	}

	return nil
}
