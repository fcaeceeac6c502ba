package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TourOperator-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOperator-BookingService/internal/api/middleware"
	confirmBooking "github.com/m04kA/TourOperator-BookingService/internal/usecase/confirm_booking"
)

const (
	msgMissingOperator         = "не удалось определить оператора"
	msgSessionNotFound         = "сессия не найдена"
	msgAccessDenied            = "доступ к чужой сессии запрещён"
	msgSessionBusy             = "подтверждение уже выполняется"
	msgAlreadyConfirmed        = "заявка уже подтверждена"
	msgBookingIncomplete       = "пройдены не все шаги мастера"
	msgClientMissing           = "в заявке отсутствуют данные клиента"
	msgClientCreateFailed      = "не удалось создать клиента, бронирование не создано"
	msgReservationFailed       = "не удалось создать бронирование"
	msgReservationUpdateFailed = "не удалось обновить бронирование"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetOperatorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingOperator)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		SessionID:  sessionID,
		OperatorID: operatorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/confirm - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, confirmBooking.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/confirm - Access denied: session=%s, operator=%d",
				sessionID, operatorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, confirmBooking.ErrSessionBusy):
			h.logger.Warn("POST /sessions/{id}/confirm - Confirmation in progress: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionBusy)

		case errors.Is(err, confirmBooking.ErrAlreadyConfirmed):
			h.logger.Warn("POST /sessions/{id}/confirm - Already confirmed: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyConfirmed)

		case errors.Is(err, confirmBooking.ErrBookingIncomplete):
			h.logger.Warn("POST /sessions/{id}/confirm - Booking incomplete: session=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBookingIncomplete)

		case errors.Is(err, confirmBooking.ErrClientMissing):
			h.logger.Warn("POST /sessions/{id}/confirm - Client missing: session=%s", sessionID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgClientMissing)

		case errors.Is(err, confirmBooking.ErrClientCreateFailed):
			h.logger.Error("POST /sessions/{id}/confirm - Client creation failed: session=%s, error=%v",
				sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgClientCreateFailed)

		case errors.Is(err, confirmBooking.ErrReservationCreateFailed):
			h.logger.Error("POST /sessions/{id}/confirm - Reservation creation failed: session=%s, error=%v",
				sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgReservationFailed)

		case errors.Is(err, confirmBooking.ErrReservationUpdateFailed):
			h.logger.Error("POST /sessions/{id}/confirm - Reservation update failed: session=%s, error=%v",
				sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgReservationUpdateFailed)

		default:
			h.logger.Error("POST /sessions/{id}/confirm - Failed to confirm: session=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/confirm - Booking confirmed: session=%s, reservation=%d",
		sessionID, result.ReservationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
