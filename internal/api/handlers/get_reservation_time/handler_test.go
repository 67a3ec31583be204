package get_reservation_time

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getReservationTime "github.com/m04kA/SMC-ReservationService/internal/usecase/get_reservation_time"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type fakeUseCase struct {
	req  *getReservationTime.Request
	resp *getReservationTime.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getReservationTime.Request) (*getReservationTime.Response, error) {
	f.req = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/shops/{shopId}/reservation-times", NewHandler(uc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{resp: &getReservationTime.Response{Slots: []getReservationTime.Slot{
		{StartTime: "18:00", EndTime: "18:30", ReservedCount: 4},
	}}}

	rec := serve(uc, "/api/v1/shops/7/reservation-times?preferredDay=2024-05-10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"reservedStartTime":"18:00","reservedEndTime":"18:30","reservedNumber":4}]`, rec.Body.String())
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), uc.req.Day)
}

func TestHandler_Handle_EmptyDay(t *testing.T) {
	rec := serve(&fakeUseCase{resp: &getReservationTime.Response{}}, "/api/v1/shops/7/reservation-times?preferredDay=2024-05-10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/api/v1/shops/x/reservation-times?preferredDay=2024-05-10").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/api/v1/shops/7/reservation-times").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeUseCase{}, "/api/v1/shops/7/reservation-times?preferredDay=2024-13-01").Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(&fakeUseCase{err: errors.New("down")}, "/api/v1/shops/7/reservation-times?preferredDay=2024-05-10").Code)
}
