package get_travel_plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TourOperator-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOperator-BookingService/internal/service/itinerary"
	planModels "github.com/m04kA/TourOperator-BookingService/internal/service/itinerary/models"
)

const (
	msgInvalidReservationID = "некорректный идентификатор бронирования"
	msgReservationNotFound  = "бронирование не найдено"
)

type Handler struct {
	itineraryService ItineraryService
	logger           Logger
}

func NewHandler(itineraryService ItineraryService, logger Logger) *Handler {
	return &Handler{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}/travel-plan
// Возвращает существующий план либо строит новый из данных бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	plan, err := h.itineraryService.GenerateFromReservation(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, itinerary.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id}/travel-plan - Reservation not found: reservation=%d",
				reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("GET /reservations/{id}/travel-plan - Failed to generate plan: reservation=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id}/travel-plan - Plan returned: reservation=%d, days=%d",
		reservationID, len(plan.Days))
	handlers.RespondJSON(w, http.StatusOK, planModels.FromDomainPlan(plan))
}
