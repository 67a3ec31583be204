package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/integrations/identity"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type fakeUseCase struct {
	req  *createReservation.Request
	resp *createReservation.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.req = req
	return f.resp, f.err
}

const validBody = `{
	"shopId": 7,
	"shopName": "Bistro",
	"courseId": 1,
	"courseName": "Dinner",
	"userName": "",
	"reservationDate": "2024-05-10",
	"reservationStarttime": "18:00",
	"reservationEndtime": "19:30",
	"reservationPeopleNumber": 3
}`

func doRequest(h *Handler, body string, withProfile bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/reservations", strings.NewReader(body))
	if withProfile {
		req = req.WithContext(middleware.WithProfile(req.Context(), &identity.Profile{Subject: "U1", Name: "Taro"}))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	id := uuid.New()
	uc := &fakeUseCase{resp: &createReservation.Response{ReservationID: id}}
	h := NewHandler(uc, logger.NewNop())

	rec := doRequest(h, validBody, true)

	require.Equal(t, http.StatusOK, rec.Code)
	var body CreateReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body.ReservationID)

	assert.Equal(t, "U1", uc.req.UserID)
	assert.Equal(t, "Taro", uc.req.UserName)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), uc.req.Date)
	assert.Equal(t, 3, uc.req.PeopleNumber)
}

func TestHandler_Handle_AcceptsClientTokenAndLocale(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{ReservationID: uuid.New()}}
	h := NewHandler(uc, logger.NewNop())

	body := strings.Replace(validBody, `"shopId": 7,`, `"idToken": "body-token", "locale": "ja", "shopId": 7,`, 1)
	rec := doRequest(h, body, true)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.req)
	// пользователь из профиля заголовка, а не из тела
	assert.Equal(t, "U1", uc.req.UserID)
	assert.Equal(t, int64(7), uc.req.ShopID)
}

func TestHandler_Handle_RequestErrors(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, logger.NewNop())

	assert.Equal(t, http.StatusUnauthorized, doRequest(h, validBody, false).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, `{"shopId":`, true).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, strings.Replace(validBody, "2024-05-10", "10.05.2024", 1), true).Code)
	assert.Equal(t, http.StatusBadRequest, doRequest(h, strings.Replace(validBody, `"18:00"`, `"1800"`, 1), true).Code)
}

func TestHandler_Handle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: createReservation.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{err: createReservation.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{err: createReservation.ErrOutsideOpeningHours, wantStatus: http.StatusBadRequest},
		{err: createReservation.ErrShopNotFound, wantStatus: http.StatusNotFound},
		{err: createReservation.ErrShopUnavailable, wantStatus: http.StatusUnprocessableEntity},
		{err: createReservation.ErrBusy, wantStatus: http.StatusConflict},
		{err: createReservation.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := doRequest(h, validBody, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
