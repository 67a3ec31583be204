package get_reservation_time

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	shopReservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/shop_reservation"
)

// UseCase use case для получения занятости дня по слотам
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

// Execute возвращает слоты дня, упорядоченные по времени начала
// Если в этот день бронирований нет, возвращается пустой список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetReservationTime: validation failed: %v", err)
		return nil, err
	}

	agg, err := uc.repo.Get(ctx, req.ShopID, req.Day)
	if errors.Is(err, shopReservationRepo.ErrDayNotFound) {
		return &Response{Slots: []Slot{}}, nil
	}
	if err != nil {
		uc.logger.Error("GetReservationTime: failed to get day shop=%d day=%s: %v",
			req.ShopID, req.Day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get day aggregate: %v", ErrInternal, err)
	}

	sorted := agg.Slots.Sorted()
	slots := make([]Slot, 0, len(sorted))
	for _, s := range sorted {
		slots = append(slots, Slot{
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			ReservedCount: s.ReservedCount,
		})
	}

	return &Response{Slots: slots}, nil
}
