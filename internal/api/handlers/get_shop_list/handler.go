package get_shop_list

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type Handler struct {
	service ShopService
	logger  Logger
}

func NewHandler(service ShopService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	areas, err := h.service.ListByArea(r.Context())
	if err != nil {
		h.logger.Error("GET /shops - Failed to list shops: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, areas)
}
