package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий бронирований клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование клиента и возвращает его с присвоенным ID
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"shop_id",
			"shop_name",
			"user_id",
			"user_name",
			"course_id",
			"course_name",
			"people_number",
			"reservation_date",
			"start_time",
			"end_time",
			"amount",
			"expiration_time",
		).
		Values(
			res.ID,
			res.ShopID,
			res.ShopName,
			res.UserID,
			res.UserName,
			res.CourseID,
			res.CourseName,
			res.PeopleNumber,
			res.ReservationDate,
			res.StartTime,
			res.EndTime,
			res.Amount,
			res.ExpirationTime,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}
