package shop_reservation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

const tableName = "shop_reservations"

var selectColumns = []string{
	"shop_id",
	"reserved_day",
	"reserved_year_month",
	"reserved_info",
	"total_reserved_number",
	"vacancy_flg",
	"expiration_time",
	"version",
	"created_at",
	"updated_at",
}

// Repository репозиторий сводок бронирований по дням (shopId, reservedDay)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает запись дня по составному ключу
// Отсутствие записи - ErrDayNotFound
func (r *Repository) Get(ctx context.Context, shopID int64, day time.Time) (*domain.DayAggregate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"shop_id": shopID, "reserved_day": day}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	agg, err := scanAggregate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan day aggregate: %v", ErrScanRow, err)
	}

	return agg, nil
}

// Insert создает запись дня, если её ещё нет
// Если запись уже создана параллельным запросом - ErrAlreadyExists
func (r *Repository) Insert(ctx context.Context, agg *domain.DayAggregate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slots, err := json.Marshal(agg.Slots.Sorted())
	if err != nil {
		return fmt.Errorf("%w: Insert - marshal slots: %v", ErrEncodeSlots, err)
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"shop_id",
			"reserved_day",
			"reserved_year_month",
			"reserved_info",
			"total_reserved_number",
			"vacancy_flg",
			"expiration_time",
			"version",
		).
		Values(
			agg.ShopID,
			agg.ReservedDay,
			agg.ReservedYearMonth,
			slots,
			agg.TotalReservedCount,
			int(agg.OccupancyLevel),
			agg.ExpirationTime,
			1,
		).
		Suffix("ON CONFLICT (shop_id, reserved_day) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Insert - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAlreadyExists
	}

	agg.Version = 1
	return nil
}

// Update заменяет слоты, итог и флаг заполненности записи дня
// Обновление выполняется только если версия не изменилась с момента чтения,
// иначе возвращается ErrVersionConflict
func (r *Repository) Update(ctx context.Context, params UpdateParams) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	slots, err := json.Marshal(params.Slots.Sorted())
	if err != nil {
		return fmt.Errorf("%w: Update - marshal slots: %v", ErrEncodeSlots, err)
	}

	query, args, err := psqlbuilder.Update(tableName).
		Set("reserved_info", slots).
		Set("total_reserved_number", params.TotalReservedCount).
		Set("vacancy_flg", int(params.OccupancyLevel)).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{
			"shop_id":      params.ShopID,
			"reserved_day": params.ReservedDay,
			"version":      params.ExpectedVersion,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}

	return nil
}

// GetByYearMonth получает все записи магазина за месяц (для календаря)
// Использует индекс (shop_id, reserved_year_month)
func (r *Repository) GetByYearMonth(ctx context.Context, shopID int64, yearMonth string) ([]*domain.DayAggregate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"shop_id": shopID, "reserved_year_month": yearMonth}).
		OrderBy("reserved_day ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByYearMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByYearMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.DayAggregate, 0)
	for rows.Next() {
		agg, err := scanAggregate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByYearMonth - scan day aggregate: %v", ErrScanRow, err)
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByYearMonth - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// DeleteExpired удаляет записи, срок хранения которых истек к моменту now
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.LtOrEq{"expiration_time": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAggregate(row rowScanner) (*domain.DayAggregate, error) {
	var (
		agg        domain.DayAggregate
		rawSlots   []byte
		vacancyFlg int
	)

	err := row.Scan(
		&agg.ShopID,
		&agg.ReservedDay,
		&agg.ReservedYearMonth,
		&rawSlots,
		&agg.TotalReservedCount,
		&vacancyFlg,
		&agg.ExpirationTime,
		&agg.Version,
		&agg.CreatedAt,
		&agg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	var slots []domain.TimeSlot
	if len(rawSlots) > 0 {
		if err := json.Unmarshal(rawSlots, &slots); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncodeSlots, err)
		}
	}

	agg.Slots = domain.NewSlotSet(slots)
	agg.OccupancyLevel = domain.OccupancyLevel(vacancyFlg)

	return &agg, nil
}
