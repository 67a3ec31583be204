package worker

import (
	"context"
	"time"
)

// Retention удаляет сводки дней, срок хранения которых истек
type Retention struct {
	repo     ExpiredDeleter
	logger   Logger
	interval time.Duration
	now      func() time.Time
}

func NewRetention(repo ExpiredDeleter, logger Logger, interval time.Duration) *Retention {
	return &Retention{
		repo:     repo,
		logger:   logger,
		interval: interval,
		now:      time.Now,
	}
}

// Run чистит устаревшие записи каждые interval, пока не отменен ctx
func (w *Retention) Run(ctx context.Context) {
	runEvery(ctx, w.interval, func(ctx context.Context) {
		if _, err := w.RunOnce(ctx); err != nil {
			w.logger.Error("Retention: %v", err)
		}
	})
}

// RunOnce удаляет записи с expiration_time <= now
func (w *Retention) RunOnce(ctx context.Context) (int64, error) {
	deleted, err := w.repo.DeleteExpired(ctx, w.now())
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		w.logger.Info("Retention: deleted %d expired day aggregates", deleted)
	}
	return deleted, nil
}
