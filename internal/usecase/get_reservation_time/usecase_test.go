package get_reservation_time

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	shopReservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/shop_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type fakeRepo struct {
	agg *domain.DayAggregate
	err error
}

func (f *fakeRepo) Get(context.Context, int64, time.Time) (*domain.DayAggregate, error) {
	return f.agg, f.err
}

var testDay = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

func TestUseCase_Execute_SortsSlots(t *testing.T) {
	repo := &fakeRepo{agg: &domain.DayAggregate{
		Slots: domain.NewSlotSet([]domain.TimeSlot{
			{StartTime: "19:00", EndTime: "19:30", ReservedCount: 2},
			{StartTime: "18:00", EndTime: "18:30", ReservedCount: 4},
			{StartTime: "18:30", EndTime: "19:00", ReservedCount: 6},
		}),
	}}
	uc := NewUseCase(repo, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ShopID: 1, Day: testDay})
	require.NoError(t, err)

	assert.Equal(t, []Slot{
		{StartTime: "18:00", EndTime: "18:30", ReservedCount: 4},
		{StartTime: "18:30", EndTime: "19:00", ReservedCount: 6},
		{StartTime: "19:00", EndTime: "19:30", ReservedCount: 2},
	}, resp.Slots)
}

func TestUseCase_Execute_NoAggregate(t *testing.T) {
	uc := NewUseCase(&fakeRepo{err: shopReservationRepo.ErrDayNotFound}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ShopID: 1, Day: testDay})
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{ShopID: 0, Day: testDay})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ShopID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	failing := NewUseCase(&fakeRepo{err: errors.New("down")}, logger.NewNop())
	_, err = failing.Execute(context.Background(), &Request{ShopID: 1, Day: testDay})
	assert.ErrorIs(t, err, ErrInternal)
}
