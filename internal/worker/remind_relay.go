package worker

import (
	"context"
	"time"
)

const (
	reminderPublished = "published"
	reminderFailed    = "failed"
)

// RemindRelay переносит наступившие напоминания из outbox в очередь
type RemindRelay struct {
	repo      RemindRepository
	publisher Publisher
	metrics   MetricsRecorder
	logger    Logger
	interval  time.Duration
	batchSize uint64
	now       func() time.Time
}

// NewRemindRelay создает воркер публикации напоминаний
func NewRemindRelay(
	repo RemindRepository,
	publisher Publisher,
	metrics MetricsRecorder,
	logger Logger,
	interval time.Duration,
	batchSize int,
) *RemindRelay {
	return &RemindRelay{
		repo:      repo,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		interval:  interval,
		batchSize: uint64(batchSize),
		now:       time.Now,
	}
}

// Run публикует напоминания каждые interval, пока не отменен ctx
func (w *RemindRelay) Run(ctx context.Context) {
	w.logger.Info("RemindRelay: started, interval=%s batch=%d", w.interval, w.batchSize)
	runEvery(ctx, w.interval, func(ctx context.Context) {
		if _, err := w.RunOnce(ctx); err != nil {
			w.logger.Error("RemindRelay: %v", err)
		}
	})
	w.logger.Info("RemindRelay: stopped")
}

// RunOnce публикует одну пачку напоминаний с датой отправки не позже сегодняшней
// Неопубликованные сообщения остаются в outbox до следующего запуска.
// Если сообщение опубликовано, но не отмечено, оно будет отправлено повторно
func (w *RemindRelay) RunOnce(ctx context.Context) (int, error) {
	now := w.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	due, err := w.repo.GetDue(ctx, today, w.batchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, msg := range due {
		if err := w.publisher.Publish(ctx, msg.ID.String(), msg.Payload); err != nil {
			w.metrics.RecordReminder(reminderFailed)
			w.logger.Warn("RemindRelay: failed to publish id=%s: %v", msg.ID, err)
			continue
		}

		publishedAt := w.now()
		if err := w.repo.MarkPublished(ctx, msg.ID, publishedAt); err != nil {
			w.logger.Error("RemindRelay: published id=%s but failed to mark it: %v", msg.ID, err)
			continue
		}
		msg.Published = true
		msg.PublishedAt = &publishedAt

		w.metrics.RecordReminder(reminderPublished)
		published++
	}

	if len(due) > 0 {
		w.logger.Info("RemindRelay: published %d/%d reminders", published, len(due))
	}

	return published, nil
}
