package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется ID-токен"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgPastDate           = "дата бронирования уже прошла"
	msgShopNotFound       = "магазин не найден"
	msgOutsideHours       = "время бронирования вне часов работы магазина"
	msgShopUnavailable    = "магазин не принимает бронирования"
	msgBusy               = "слишком много одновременных бронирований, повторите попытку"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	profile, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(profile)
	if err != nil {
		h.logger.Warn("PUT /reservations - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations - Invalid input: user_id=%s, error=%v", profile.Subject, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("PUT /reservations - Past date: user_id=%s, date=%s", profile.Subject, req.ReservationDate)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createReservation.ErrOutsideOpeningHours):
			h.logger.Warn("PUT /reservations - Outside opening hours: shop_id=%d", req.ShopID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createReservation.ErrShopNotFound):
			h.logger.Warn("PUT /reservations - Shop not found: shop_id=%d", req.ShopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, createReservation.ErrShopUnavailable):
			h.logger.Error("PUT /reservations - Shop has no capacity: shop_id=%d", req.ShopID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgShopUnavailable)

		case errors.Is(err, createReservation.ErrBusy):
			h.logger.Warn("PUT /reservations - Day is busy: shop_id=%d, date=%s", req.ShopID, req.ReservationDate)
			handlers.RespondError(w, http.StatusConflict, msgBusy)

		default:
			h.logger.Error("PUT /reservations - Failed to create reservation: user_id=%s, shop_id=%d, error=%v",
				profile.Subject, req.ShopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations - Reservation created: reservation_id=%s, user_id=%s, shop_id=%d",
		result.ReservationID, profile.Subject, req.ShopID)
	handlers.RespondJSON(w, http.StatusOK, CreateReservationResponse{ReservationID: result.ReservationID.String()})
}
