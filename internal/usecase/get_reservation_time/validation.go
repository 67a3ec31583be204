package get_reservation_time

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shopId must be positive", ErrInvalidInput)
	}

	if req.Day.IsZero() {
		return fmt.Errorf("%w: preferredDay is required", ErrInvalidInput)
	}

	return nil
}
