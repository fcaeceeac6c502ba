package apply_action

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TourOperator-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOperator-BookingService/internal/api/middleware"
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard"
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard/models"
)

const (
	msgMissingOperator    = "не удалось определить оператора"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат дат, ожидается YYYY-MM-DD"
	msgNotesTooLong       = "примечания слишком длинные"
	msgSessionNotFound    = "сессия не найдена"
	msgAccessDenied       = "доступ к чужой сессии запрещён"
	msgSessionBusy        = "сессия занята подтверждением, повторите позже"
	msgSessionConfirmed   = "заявка уже подтверждена, изменения недоступны"
	msgInvalidAction      = "неизвестный тип действия"
	msgUseItemsEndpoint   = "позиции добавляются через POST /sessions/{sessionId}/items"
	msgUseLoadEndpoint    = "загрузка бронирования выполняется через POST /sessions/{sessionId}/load-reservation"
)

type Handler struct {
	wizardService WizardService
	logger        Logger
}

func NewHandler(wizardService WizardService, logger Logger) *Handler {
	return &Handler{
		wizardService: wizardService,
		logger:        logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/actions
//
// Действия добавления позиций и загрузки бронирования сюда не принимаются:
// у них есть собственные endpoints с обращением к каталогу и ReservationService
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetOperatorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingOperator)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	var req ApplyActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/actions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch wizard.ActionType(req.Type) {
	case wizard.ActionAddFlight, wizard.ActionAddAccommodation,
		wizard.ActionAddVehicle, wizard.ActionAddActivity:
		handlers.RespondBadRequest(w, msgUseItemsEndpoint)
		return
	case wizard.ActionLoadReservation:
		handlers.RespondBadRequest(w, msgUseLoadEndpoint)
		return
	}

	action, err := req.ToAction()
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/actions - Failed to parse action: %v", err)
		if errors.Is(err, errNotesTooLong) {
			handlers.RespondBadRequest(w, msgNotesTooLong)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	session, err := h.wizardService.ApplyAction(r.Context(), sessionID, operatorID, action)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/actions - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/actions - Access denied: session=%s, operator=%d",
				sessionID, operatorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, wizard.ErrSessionBusy):
			h.logger.Warn("POST /sessions/{id}/actions - Session busy: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionBusy)

		case errors.Is(err, wizard.ErrSessionConfirmed):
			h.logger.Warn("POST /sessions/{id}/actions - Session confirmed: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionConfirmed)

		case errors.Is(err, wizard.ErrInvalidAction):
			h.logger.Warn("POST /sessions/{id}/actions - Invalid action type=%s: session=%s",
				req.Type, sessionID)
			handlers.RespondBadRequest(w, msgInvalidAction)

		default:
			h.logger.Error("POST /sessions/{id}/actions - Failed to apply action=%s: session=%s, error=%v",
				req.Type, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/actions - Action applied: type=%s, session=%s, step=%d",
		req.Type, sessionID, session.State.CurrentStep)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSession(session))
}
