package shop

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

var shopColumns = []string{
	"id",
	"area_id",
	"area_name",
	"name",
	"address",
	"open_time",
	"close_time",
	"seats_number",
}

// Repository репозиторий мастер-данных магазинов и их курсов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория магазинов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает магазин вместе с курсами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shopColumns...).
		From("shops").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	shop, err := scanShop(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan shop: %v", ErrScanRow, err)
	}

	courses, err := r.GetCourses(ctx, id)
	if err != nil {
		return nil, err
	}
	shop.Courses = courses

	return shop, nil
}

// List получает все магазины, упорядоченные по району и ID
// Курсы не загружаются
func (r *Repository) List(ctx context.Context) ([]*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shopColumns...).
		From("shops").
		OrderBy("area_id ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	shops := make([]*domain.Shop, 0)
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan shop: %v", ErrScanRow, err)
		}
		shops = append(shops, shop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return shops, nil
}

// GetCourses получает курсы магазина
func (r *Repository) GetCourses(ctx context.Context, shopID int64) ([]domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "shop_id", "name", "price", "duration_minutes").
		From("shop_courses").
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourses - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCourses - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courses := make([]domain.Course, 0)
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.ShopID, &c.Name, &c.Price, &c.Duration); err != nil {
			return nil, fmt.Errorf("%w: GetCourses - scan course: %v", ErrScanRow, err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCourses - rows iteration: %v", ErrScanRow, err)
	}

	return courses, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShop(row rowScanner) (*domain.Shop, error) {
	var shop domain.Shop
	err := row.Scan(
		&shop.ID,
		&shop.AreaID,
		&shop.AreaName,
		&shop.Name,
		&shop.Address,
		&shop.OpenTime,
		&shop.CloseTime,
		&shop.SeatsNumber,
	)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}
