package get_reservation_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getReservationTime "github.com/m04kA/SMC-ReservationService/internal/usecase/get_reservation_time"
)

const (
	msgInvalidShopID = "некорректный ID магазина"
	msgMissingDay    = "параметр preferredDay обязателен"
	msgInvalidDay    = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetReservationTimeUseCase
	logger  Logger
}

func NewHandler(useCase GetReservationTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/reservation-times
// Query params: preferredDay (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, err := strconv.ParseInt(mux.Vars(r)["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{shopId}/reservation-times - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	dayStr := r.URL.Query().Get("preferredDay")
	if dayStr == "" {
		h.logger.Warn("GET /shops/{shopId}/reservation-times - Missing preferredDay")
		handlers.RespondBadRequest(w, msgMissingDay)
		return
	}

	useCaseReq, err := ToUseCaseRequest(shopID, dayStr)
	if err != nil {
		h.logger.Warn("GET /shops/{shopId}/reservation-times - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, getReservationTime.ErrInvalidInput) {
			h.logger.Warn("GET /shops/{shopId}/reservation-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidShopID)
			return
		}
		h.logger.Error("GET /shops/{shopId}/reservation-times - Failed to get slots: shop_id=%d, day=%s, error=%v",
			shopID, dayStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
