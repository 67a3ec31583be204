package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/lock"
	shopRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/shop"
	"github.com/m04kA/SMC-ReservationService/internal/service/aggregation"
	"github.com/m04kA/SMC-ReservationService/internal/service/remind"
)

// UseCase use case для создания бронирования
type UseCase struct {
	shopRepo        ShopRepository
	aggregation     AggregationService
	reservationRepo ReservationRepository
	remindRepo      RemindRepository
	locker          Locker
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
	cfg             Config
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shopRepo ShopRepository,
	aggregation AggregationService,
	reservationRepo ReservationRepository,
	remindRepo RemindRepository,
	locker Locker,
	txManager TransactionManager,
	logger Logger,
	cfg Config,
) *UseCase {
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = domain.DefaultRetentionDays
	}

	return &UseCase{
		shopRepo:        shopRepo,
		aggregation:     aggregation,
		reservationRepo: reservationRepo,
		remindRepo:      remindRepo,
		locker:          locker,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		cfg:             cfg,
	}
}

// Execute выполняет use case создания бронирования
// Сводка дня, бронирование клиента и напоминания пишутся в одной транзакции.
// Транзакция выполняется под блокировкой дня магазина.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, shop=%d, course=%d, date=%s, time=%s-%s, people=%d",
		req.UserID, req.ShopID, req.CourseID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.PeopleNumber)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 2. Получаем магазин вместе с курсами
	shop, err := uc.shopRepo.GetByID(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			uc.logger.Warn("CreateReservation: shop id=%d not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("CreateReservation: failed to get shop id=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	if err := validateOpeningHours(shop, req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, err
	}

	// 3. Блокируем день магазина
	unlock, err := uc.locker.Lock(ctx, lock.DayKey(req.ShopID, req.Date))
	switch {
	case errors.Is(err, lock.ErrLockTimeout):
		uc.logger.Warn("CreateReservation: shop=%d day=%s is locked: %v", req.ShopID, req.Date.Format(domain.DateFormat), err)
		return nil, ErrBusy
	case err != nil && ctx.Err() != nil:
		uc.logger.Warn("CreateReservation: request cancelled while taking lock: %v", err)
		return nil, ctx.Err()
	case err != nil:
		// без блокировки корректность все равно обеспечивает проверка версии
		uc.logger.Warn("CreateReservation: lock unavailable, continuing without it: %v", err)
	default:
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				uc.logger.Warn("CreateReservation: failed to release lock: %v", err)
			}
		}()
	}

	amount := shop.CoursePrice(req.CourseID)

	var (
		created *domain.Reservation
		agg     *domain.DayAggregate
	)

	// 4. Пишем все в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Учитываем бронирование в сводке дня
		agg, err = uc.aggregation.RecordReservation(txCtx, aggregation.Request{
			ShopID:     req.ShopID,
			Day:        req.Date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			PartyCount: req.PeopleNumber,
		}, shop)
		if err != nil {
			switch {
			case errors.Is(err, aggregation.ErrInvalidCapacity):
				return ErrShopUnavailable
			case errors.Is(err, aggregation.ErrConcurrentUpdate):
				return ErrBusy
			}
			uc.logger.Error("CreateReservation: failed to record day aggregate: %v", err)
			return fmt.Errorf("%w: failed to record day aggregate: %v", ErrInternal, err)
		}

		// 4.2. Сохраняем бронирование клиента
		created, err = uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ShopID:          req.ShopID,
			ShopName:        req.ShopName,
			UserID:          req.UserID,
			UserName:        req.UserName,
			CourseID:        req.CourseID,
			CourseName:      req.CourseName,
			PeopleNumber:    req.PeopleNumber,
			ReservationDate: req.Date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			Amount:          amount,
			ExpirationTime:  domain.ExpirationOf(req.Date, uc.cfg.RetentionDays),
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 4.3. Кладем напоминания в outbox
		reminders, err := remind.BuildReminders(req.UserID, uc.cfg.ChannelID, req.Date, remind.Params{
			ShopName:        req.ShopName,
			ReservationDate: req.Date.Format(domain.DateFormat),
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			CourseName:      req.CourseName,
			PeopleNumber:    req.PeopleNumber,
		}, uc.cfg.RemindDateDifference)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to build reminders: %v", err)
			return fmt.Errorf("%w: failed to build reminders: %v", ErrInternal, err)
		}

		for _, msg := range reminders {
			if err := uc.remindRepo.Insert(txCtx, msg); err != nil {
				uc.logger.Error("CreateReservation: failed to save reminder for %s: %v",
					msg.SendDate.Format(domain.DateFormat), err)
				return fmt.Errorf("%w: failed to save reminder: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: created reservation id=%s, shop=%d day total=%d level=%s",
		created.ID, req.ShopID, agg.TotalReservedCount, agg.OccupancyLevel)

	return &Response{
		ReservationID:  created.ID,
		Amount:         created.Amount,
		OccupancyLevel: int(agg.OccupancyLevel),
	}, nil
}
