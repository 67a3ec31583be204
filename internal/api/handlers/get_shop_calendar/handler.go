package get_shop_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getShopCalendar "github.com/m04kA/SMC-ReservationService/internal/usecase/get_shop_calendar"
)

const (
	msgInvalidShopID    = "некорректный ID магазина"
	msgMissingYearMonth = "параметр preferredYearMonth обязателен"
	msgInvalidYearMonth = "некорректный формат месяца, ожидается YYYY-MM"
)

type Handler struct {
	useCase GetShopCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetShopCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/calendar
// Query params: preferredYearMonth (required, YYYY-MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{shopId}/calendar - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	yearMonth := r.URL.Query().Get("preferredYearMonth")
	if yearMonth == "" {
		h.logger.Warn("GET /shops/{shopId}/calendar - Missing preferredYearMonth")
		handlers.RespondBadRequest(w, msgMissingYearMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getShopCalendar.Request{
		ShopID:             shopID,
		PreferredYearMonth: yearMonth,
	})
	if err != nil {
		if errors.Is(err, getShopCalendar.ErrInvalidInput) {
			h.logger.Warn("GET /shops/{shopId}/calendar - Invalid input: shop_id=%d, month=%s", shopID, yearMonth)
			handlers.RespondBadRequest(w, msgInvalidYearMonth)
			return
		}
		h.logger.Error("GET /shops/{shopId}/calendar - Failed to get calendar: shop_id=%d, error=%v", shopID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
