package shop_reservation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
)

type fakeResult struct {
	affected int64
	err      error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.affected, r.err }

// fakeExecutor запоминает последний запрос и отвечает заданным результатом
type fakeExecutor struct {
	query   string
	args    []interface{}
	result  sql.Result
	execErr error
}

func (f *fakeExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.query = query
	f.args = args
	if f.execErr != nil {
		return nil, f.execErr
	}
	return f.result, nil
}

func (f *fakeExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

type fakeTx struct {
	fakeExecutor
}

func (f *fakeTx) Commit() error   { return nil }
func (f *fakeTx) Rollback() error { return nil }

var testDay = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

func testAggregate() *domain.DayAggregate {
	return &domain.DayAggregate{
		ShopID:            7,
		ReservedDay:       testDay,
		ReservedYearMonth: "2024-05",
		Slots: domain.NewSlotSet([]domain.TimeSlot{
			{StartTime: "18:30", EndTime: "19:00", ReservedCount: 2},
			{StartTime: "18:00", EndTime: "18:30", ReservedCount: 2},
		}),
		TotalReservedCount: 4,
		OccupancyLevel:     domain.OccupancyAvailableMuch,
		ExpirationTime:     testDay.AddDate(0, 0, 1),
	}
}

func testUpdateParams() UpdateParams {
	return UpdateParams{
		ShopID:      7,
		ReservedDay: testDay,
		Slots: domain.NewSlotSet([]domain.TimeSlot{
			{StartTime: "18:00", EndTime: "18:30", ReservedCount: 5},
		}),
		TotalReservedCount: 5,
		OccupancyLevel:     domain.OccupancyAvailableFew,
		ExpectedVersion:    3,
	}
}

func TestRepository_Insert(t *testing.T) {
	db := &fakeExecutor{result: fakeResult{affected: 1}}
	repo := NewRepository(db)
	agg := testAggregate()

	require.NoError(t, repo.Insert(context.Background(), agg))

	assert.Contains(t, db.query, "INSERT INTO shop_reservations")
	assert.Contains(t, db.query, "ON CONFLICT (shop_id, reserved_day) DO NOTHING")
	assert.Equal(t, int64(1), agg.Version)

	require.Len(t, db.args, 8)
	assert.Equal(t, int64(7), db.args[0])
	assert.Equal(t, "2024-05", db.args[2])
	assert.JSONEq(t,
		`[{"reservedStartTime":"18:00","reservedEndTime":"18:30","reservedNumber":2},
		  {"reservedStartTime":"18:30","reservedEndTime":"19:00","reservedNumber":2}]`,
		string(db.args[3].([]byte)))
	assert.Equal(t, int(domain.OccupancyAvailableMuch), db.args[5])
	assert.Equal(t, 1, db.args[7])
}

func TestRepository_Insert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		db      *fakeExecutor
		wantErr error
	}{
		{
			name:    "day created concurrently",
			db:      &fakeExecutor{result: fakeResult{affected: 0}},
			wantErr: ErrAlreadyExists,
		},
		{
			name:    "exec failure",
			db:      &fakeExecutor{execErr: errors.New("connection reset")},
			wantErr: ErrExecQuery,
		},
		{
			name:    "rows affected failure",
			db:      &fakeExecutor{result: fakeResult{err: errors.New("driver")}},
			wantErr: ErrExecQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := testAggregate()
			err := NewRepository(tt.db).Insert(context.Background(), agg)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, agg.Version)
		})
	}
}

func TestRepository_Update(t *testing.T) {
	db := &fakeExecutor{result: fakeResult{affected: 1}}
	repo := NewRepository(db)

	require.NoError(t, repo.Update(context.Background(), testUpdateParams()))

	assert.Contains(t, db.query, "UPDATE shop_reservations SET")
	assert.Contains(t, db.query, "version = version + 1")
	assert.Contains(t, db.query, "updated_at = now()")
	assert.Contains(t, db.query, "WHERE reserved_day = $4 AND shop_id = $5 AND version = $6")

	require.Len(t, db.args, 6)
	assert.Equal(t, 5, db.args[1])
	assert.Equal(t, int(domain.OccupancyAvailableFew), db.args[2])
	assert.Equal(t, testDay, db.args[3])
	assert.Equal(t, int64(7), db.args[4])
	assert.Equal(t, int64(3), db.args[5])
}

func TestRepository_Update_Errors(t *testing.T) {
	tests := []struct {
		name    string
		db      *fakeExecutor
		wantErr error
	}{
		{
			name:    "version changed since read",
			db:      &fakeExecutor{result: fakeResult{affected: 0}},
			wantErr: ErrVersionConflict,
		},
		{
			name:    "exec failure",
			db:      &fakeExecutor{execErr: errors.New("connection reset")},
			wantErr: ErrExecQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRepository(tt.db).Update(context.Background(), testUpdateParams())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRepository_UsesTransactionFromContext(t *testing.T) {
	db := &fakeExecutor{result: fakeResult{affected: 1}}
	tx := &fakeTx{fakeExecutor: fakeExecutor{result: fakeResult{affected: 1}}}
	ctx := dbmetrics.WithTx(context.Background(), tx)

	require.NoError(t, NewRepository(db).Update(ctx, testUpdateParams()))

	assert.Empty(t, db.query)
	assert.Contains(t, tx.query, "UPDATE shop_reservations")
}

func TestRepository_DeleteExpired(t *testing.T) {
	db := &fakeExecutor{result: fakeResult{affected: 3}}
	now := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)

	deleted, err := NewRepository(db).DeleteExpired(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, int64(3), deleted)
	assert.Equal(t, "DELETE FROM shop_reservations WHERE expiration_time <= $1", db.query)
	assert.Equal(t, []interface{}{now}, db.args)
}

// fakeRow раскладывает значения по указателям в порядке колонок
type fakeRow struct {
	values []interface{}
	err    error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

func rowWithSlots(raw []byte) fakeRow {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return fakeRow{values: []interface{}{
		int64(7),
		testDay,
		"2024-05",
		raw,
		4,
		int(domain.OccupancyAvailableFew),
		testDay.AddDate(0, 0, 1),
		int64(2),
		created,
		created,
	}}
}

func TestScanAggregate(t *testing.T) {
	raw, err := json.Marshal([]domain.TimeSlot{
		{StartTime: "18:00", EndTime: "18:30", ReservedCount: 2},
		{StartTime: "18:30", EndTime: "19:00", ReservedCount: 2},
	})
	require.NoError(t, err)

	agg, err := scanAggregate(rowWithSlots(raw))
	require.NoError(t, err)

	assert.Equal(t, int64(7), agg.ShopID)
	assert.Equal(t, domain.OccupancyAvailableFew, agg.OccupancyLevel)
	assert.Equal(t, int64(2), agg.Version)
	require.Len(t, agg.Slots, 2)
	assert.Equal(t, 2, agg.Slots["18:30"].ReservedCount)
	assert.Equal(t, agg.TotalReservedCount, agg.Slots.Total())
}

func TestScanAggregate_EmptySlots(t *testing.T) {
	agg, err := scanAggregate(rowWithSlots(nil))
	require.NoError(t, err)

	assert.NotNil(t, agg.Slots)
	assert.Empty(t, agg.Slots)
}

func TestScanAggregate_BrokenSlots(t *testing.T) {
	_, err := scanAggregate(rowWithSlots([]byte(`{not json`)))
	assert.ErrorIs(t, err, ErrEncodeSlots)
}

func TestScanAggregate_ScanError(t *testing.T) {
	_, err := scanAggregate(fakeRow{err: sql.ErrNoRows})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
