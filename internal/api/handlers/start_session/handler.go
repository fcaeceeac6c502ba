package start_session

import (
	"net/http"

	"github.com/m04kA/TourOperator-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOperator-BookingService/internal/api/middleware"
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard/models"
)

const (
	msgMissingOperator = "не удалось определить оператора"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetOperatorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingOperator)
		return
	}

	session, err := h.wizardService.StartSession(r.Context(), operatorID)
	if err != nil {
		h.logger.Error("POST /sessions - Failed to start session: operator=%d, error=%v", operatorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions - Session started: session=%s, operator=%d", session.ID, operatorID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainSession(session))
}
