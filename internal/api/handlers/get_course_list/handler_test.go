package get_course_list

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/service/shops"
	"github.com/m04kA/SMC-ReservationService/internal/service/shops/models"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

type fakeService struct {
	courses []models.CourseResponse
	err     error
}

func (f *fakeService) GetCourses(context.Context, int64) ([]models.CourseResponse, error) {
	return f.courses, f.err
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/shops/{shopId}/courses", NewHandler(svc, logger.NewNop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{courses: []models.CourseResponse{
		{CourseID: 1, CourseName: "Lunch", Price: decimal.NewFromInt(2500), CourseMinutes: 90},
	}}

	rec := serve(svc, "/api/v1/shops/3/courses")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"courseId":1,"courseName":"Lunch","price":"2500","courseMinutes":90}]`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/api/v1/shops/abc/courses").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: shops.ErrInvalidInput}, "/api/v1/shops/0/courses").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: shops.ErrShopNotFound}, "/api/v1/shops/9/courses").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("down")}, "/api/v1/shops/9/courses").Code)
}
