package remind_message

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository outbox напоминаний: сообщения пишутся в транзакции бронирования
// и позже публикуются в брокер воркером
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория напоминаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет напоминание
func (r *Repository) Insert(ctx context.Context, msg *domain.RemindMessage) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("remind_messages").
		Columns("id", "user_id", "channel_id", "send_date", "payload", "published").
		Values(msg.ID, msg.UserID, msg.ChannelID, msg.SendDate, msg.Payload, false).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetDue получает неопубликованные напоминания с датой отправки не позже day
func (r *Repository) GetDue(ctx context.Context, day time.Time, limit uint64) ([]*domain.RemindMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "channel_id", "send_date", "payload", "created_at").
		From("remind_messages").
		Where(squirrel.Eq{"published": false}).
		Where(squirrel.LtOrEq{"send_date": day}).
		OrderBy("send_date ASC", "created_at ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	messages := make([]*domain.RemindMessage, 0)
	for rows.Next() {
		var msg domain.RemindMessage
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.ChannelID, &msg.SendDate, &msg.Payload, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetDue - scan message: %v", ErrScanRow, err)
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDue - rows iteration: %v", ErrScanRow, err)
	}

	return messages, nil
}

// MarkPublished отмечает напоминание опубликованным
func (r *Repository) MarkPublished(ctx context.Context, id uuid.UUID, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("remind_messages").
		Set("published", true).
		Set("published_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkPublished - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkPublished - execute update: %v", ErrExecQuery, err)
	}

	return nil
}
