package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type fakeRemindRepo struct {
	due       []*domain.RemindMessage
	getErr    error
	markErr   error
	queriedAt time.Time
	limit     uint64
	marked    []uuid.UUID
}

func (f *fakeRemindRepo) GetDue(_ context.Context, day time.Time, limit uint64) ([]*domain.RemindMessage, error) {
	f.queriedAt = day
	f.limit = limit
	return f.due, f.getErr
}

func (f *fakeRemindRepo) MarkPublished(_ context.Context, id uuid.UUID, _ time.Time) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, id)
	return nil
}

type fakePublisher struct {
	failFor map[string]bool
	sent    []string
}

func (f *fakePublisher) Publish(_ context.Context, id string, _ []byte) error {
	if f.failFor[id] {
		return errors.New("channel closed")
	}
	f.sent = append(f.sent, id)
	return nil
}

type countingMetrics struct {
	statuses map[string]int
}

func (m *countingMetrics) RecordReminder(status string) {
	if m.statuses == nil {
		m.statuses = make(map[string]int)
	}
	m.statuses[status]++
}

func TestRemindRelay_RunOnce(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	due := []*domain.RemindMessage{
		{ID: first, Payload: []byte(`{}`)},
		{ID: second, Payload: []byte(`{}`)},
	}
	repo := &fakeRemindRepo{due: due}
	pub := &fakePublisher{failFor: map[string]bool{second.String(): true}}
	m := &countingMetrics{}

	relay := NewRemindRelay(repo, pub, m, logger.NewNop(), time.Minute, 50)
	relay.now = func() time.Time { return time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC) }

	published, err := relay.RunOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, published)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), repo.queriedAt)
	assert.Equal(t, uint64(50), repo.limit)
	assert.Equal(t, []uuid.UUID{first}, repo.marked)
	assert.Equal(t, []string{first.String()}, pub.sent)
	assert.Equal(t, map[string]int{reminderPublished: 1, reminderFailed: 1}, m.statuses)

	assert.True(t, due[0].Published)
	require.NotNil(t, due[0].PublishedAt)
	assert.Equal(t, time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC), *due[0].PublishedAt)
	assert.False(t, due[1].Published)
	assert.Nil(t, due[1].PublishedAt)
}

func TestRemindRelay_RunOnce_RepoError(t *testing.T) {
	relay := NewRemindRelay(&fakeRemindRepo{getErr: errors.New("down")}, &fakePublisher{}, &countingMetrics{}, logger.NewNop(), time.Minute, 10)

	_, err := relay.RunOnce(context.Background())
	assert.Error(t, err)
}

func TestRemindRelay_RunOnce_MarkFailureNotCounted(t *testing.T) {
	repo := &fakeRemindRepo{
		due:     []*domain.RemindMessage{{ID: uuid.New()}},
		markErr: errors.New("down"),
	}
	relay := NewRemindRelay(repo, &fakePublisher{}, &countingMetrics{}, logger.NewNop(), time.Minute, 10)

	published, err := relay.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, published)
}

type fakeDeleter struct {
	at      time.Time
	deleted int64
	err     error
}

func (f *fakeDeleter) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.at = now
	return f.deleted, f.err
}

func TestRetention_RunOnce(t *testing.T) {
	now := time.Date(2024, 5, 12, 3, 0, 0, 0, time.UTC)
	repo := &fakeDeleter{deleted: 4}
	w := NewRetention(repo, logger.NewNop(), time.Hour)
	w.now = func() time.Time { return now }

	deleted, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.Equal(t, now, repo.at)
}

func TestRetention_RunStopsOnCancel(t *testing.T) {
	repo := &fakeDeleter{}
	w := NewRetention(repo, logger.NewNop(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("retention worker did not stop")
	}
}
