package load_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TourOperator-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOperator-BookingService/internal/api/middleware"
	loadReservation "github.com/m04kA/TourOperator-BookingService/internal/usecase/load_reservation"
)

const (
	msgMissingOperator     = "не удалось определить оператора"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgSessionNotFound     = "сессия не найдена"
	msgAccessDenied        = "доступ к чужой сессии запрещён"
	msgSessionBusy         = "сессия занята подтверждением, повторите позже"
	msgSessionConfirmed    = "заявка уже подтверждена, загрузка недоступна"
	msgReservationNotFound = "бронирование не найдено"
	msgInvalidInput        = "некорректный идентификатор бронирования"
)

type Handler struct {
	useCase LoadReservationUseCase
	logger  Logger
}

func NewHandler(useCase LoadReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/load-reservation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetOperatorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingOperator)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	var req LoadReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/load-reservation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &loadReservation.Request{
		SessionID:     sessionID,
		OperatorID:    operatorID,
		ReservationID: req.ReservationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, loadReservation.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/load-reservation - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, loadReservation.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/load-reservation - Access denied: session=%s, operator=%d",
				sessionID, operatorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, loadReservation.ErrSessionBusy):
			h.logger.Warn("POST /sessions/{id}/load-reservation - Session busy: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionBusy)

		case errors.Is(err, loadReservation.ErrSessionConfirmed):
			h.logger.Warn("POST /sessions/{id}/load-reservation - Session confirmed: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionConfirmed)

		case errors.Is(err, loadReservation.ErrReservationNotFound):
			h.logger.Warn("POST /sessions/{id}/load-reservation - Reservation not found: reservation=%d",
				req.ReservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, loadReservation.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/load-reservation - Invalid input: session=%s, error=%v",
				sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions/{id}/load-reservation - Failed to load: session=%s, reservation=%d, error=%v",
				sessionID, req.ReservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/load-reservation - Loaded: session=%s, reservation=%d, warnings=%d",
		sessionID, req.ReservationID, len(result.Warnings))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
