package aggregation

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	shopReservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/shop_reservation"
)

const (
	writeInsert = "insert"
	writeUpdate = "update"
)

// Service сервис учета бронирований в сводках по дням
type Service struct {
	repo         DayAggregateRepository
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
	cfg          Config
}

// NewService создает новый экземпляр сервиса агрегации
func NewService(
	repo DayAggregateRepository,
	metrics MetricsRecorder,
	logger Logger,
	cfg Config,
) *Service {
	if cfg.MaxMergeRetries < 0 {
		cfg.MaxMergeRetries = 0
	}
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = domain.DefaultRetentionDays
	}

	return &Service{
		repo:         repo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		cfg:          cfg,
	}
}

// RecordReservation учитывает бронирование в сводке дня (shopId, day)
//
// Каждый вызов аддитивен: повторный вызов с теми же данными удваивает итог.
// Запись выполняется одной операцией: insert, если записи дня ещё нет, иначе
// условный update по версии. При конфликте с параллельным запросом запись
// перечитывается и слияние повторяется не более MaxMergeRetries раз.
// Ошибки хранилища возвращаются как есть.
func (s *Service) RecordReservation(ctx context.Context, req Request, shop *domain.Shop) (*domain.DayAggregate, error) {
	maxReservable := shop.MaxReservableCount()
	if maxReservable <= 0 {
		s.logger.Error("RecordReservation: shop=%d has no capacity (seats=%d, open=%s, close=%s)",
			shop.ID, shop.SeatsNumber, shop.OpenTime, shop.CloseTime)
		return nil, ErrInvalidCapacity
	}

	newSlots, newTotal := Divide(req.StartTime, req.EndTime, req.PartyCount)

	attempts := s.cfg.MaxMergeRetries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		agg, err := s.recordOnce(ctx, req, newSlots, newTotal, maxReservable)
		if err == nil {
			return agg, nil
		}

		switch {
		case errors.Is(err, shopReservationRepo.ErrAlreadyExists):
			s.metrics.RecordMergeConflict("insert")
		case errors.Is(err, shopReservationRepo.ErrVersionConflict):
			s.metrics.RecordMergeConflict("version")
		default:
			return nil, err
		}

		s.logger.Warn("RecordReservation: concurrent write on shop=%d day=%s, attempt %d/%d: %v",
			req.ShopID, req.Day.Format(domain.DateFormat), attempt, attempts, err)
	}

	return nil, ErrConcurrentUpdate
}

func (s *Service) recordOnce(
	ctx context.Context,
	req Request,
	newSlots []domain.TimeSlot,
	newTotal int,
	maxReservable int,
) (*domain.DayAggregate, error) {
	existing, err := s.repo.Get(ctx, req.ShopID, req.Day)
	if err != nil && !errors.Is(err, shopReservationRepo.ErrDayNotFound) {
		s.logger.Error("RecordReservation: failed to get day aggregate shop=%d day=%s: %v",
			req.ShopID, req.Day.Format(domain.DateFormat), err)
		return nil, err
	}
	if errors.Is(err, shopReservationRepo.ErrDayNotFound) {
		existing = nil
	}

	mergedSlots, mergedTotal := Merge(existing, newSlots, newTotal)
	level := Classify(float64(mergedTotal), maxReservable)

	if existing == nil {
		agg := &domain.DayAggregate{
			ShopID:             req.ShopID,
			ReservedDay:        req.Day,
			ReservedYearMonth:  domain.YearMonthOf(req.Day),
			Slots:              mergedSlots,
			TotalReservedCount: mergedTotal,
			OccupancyLevel:     level,
			ExpirationTime:     domain.ExpirationOf(req.Day, s.cfg.RetentionDays),
		}
		if err := s.repo.Insert(ctx, agg); err != nil {
			return nil, err
		}

		s.metrics.RecordReservation(writeInsert)
		s.logger.Info("RecordReservation: created day shop=%d day=%s total=%d/%d level=%s",
			req.ShopID, req.Day.Format(domain.DateFormat), mergedTotal, maxReservable, level)
		return agg, nil
	}

	err = s.repo.Update(ctx, shopReservationRepo.UpdateParams{
		ShopID:             req.ShopID,
		ReservedDay:        req.Day,
		Slots:              mergedSlots,
		TotalReservedCount: mergedTotal,
		OccupancyLevel:     level,
		ExpectedVersion:    existing.Version,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordReservation(writeUpdate)
	s.logger.Info("RecordReservation: updated day shop=%d day=%s total=%d/%d level=%s",
		req.ShopID, req.Day.Format(domain.DateFormat), mergedTotal, maxReservable, level)

	updated := *existing
	updated.Slots = mergedSlots
	updated.TotalReservedCount = mergedTotal
	updated.OccupancyLevel = level
	updated.Version = existing.Version + 1
	updated.UpdatedAt = s.timeProvider.Now()

	return &updated, nil
}
