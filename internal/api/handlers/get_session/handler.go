package get_session

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
	msgMissingOperator = "не удалось определить оператора"
	msgSessionNotFound = "сессия не найдена"
	msgAccessDenied    = "доступ к чужой сессии запрещён"
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

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetOperatorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingOperator)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.wizardService.GetSession(r.Context(), sessionID, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id} - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrAccessDenied):
			h.logger.Warn("GET /sessions/{id} - Access denied: session=%s, operator=%d", sessionID, operatorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /sessions/{id} - Failed to get session: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSession(session))
}
