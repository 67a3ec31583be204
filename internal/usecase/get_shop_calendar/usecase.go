package get_shop_calendar

import (
	"context"
	"fmt"
)

// UseCase use case для получения заполненности дней месяца
type UseCase struct {
	repo   DayAggregateRepository
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo DayAggregateRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute возвращает флаги заполненности для дней месяца, в которых есть бронирования
// Дни без бронирований в ответ не попадают
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetShopCalendar: validation failed: %v", err)
		return nil, err
	}

	days, err := uc.repo.GetByYearMonth(ctx, req.ShopID, req.PreferredYearMonth)
	if err != nil {
		uc.logger.Error("GetShopCalendar: failed to get days for shop=%d month=%s: %v",
			req.ShopID, req.PreferredYearMonth, err)
		return nil, fmt.Errorf("%w: failed to get day aggregates: %v", ErrInternal, err)
	}

	resp := &Response{
		ReservedYearMonth: req.PreferredYearMonth,
		ReservedDays:      make([]ReservedDay, 0, len(days)),
	}
	for _, d := range days {
		resp.ReservedDays = append(resp.ReservedDays, ReservedDay{
			Day:        d.ReservedDay.Day(),
			VacancyFlg: int(d.OccupancyLevel),
		})
	}

	uc.logger.Info("GetShopCalendar: shop=%d month=%s reserved days=%d",
		req.ShopID, req.PreferredYearMonth, len(resp.ReservedDays))

	return resp, nil
}
