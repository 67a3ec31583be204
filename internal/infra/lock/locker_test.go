package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "lock:shop-reservation:42:2024-07-01", DayKey(42, day))
}

func TestNoopLocker(t *testing.T) {
	unlock, err := NoopLocker{}.Lock(context.Background(), "any")
	require.NoError(t, err)
	assert.NoError(t, unlock(context.Background()))
}
