package add_line_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TourOperator-BookingService/internal/api/handlers"
	"github.com/m04kA/TourOperator-BookingService/internal/api/middleware"
	addLineItem "github.com/m04kA/TourOperator-BookingService/internal/usecase/add_line_item"
)

const (
	msgMissingOperator    = "не удалось определить оператора"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат дат, ожидается YYYY-MM-DD"
	msgSessionNotFound    = "сессия не найдена"
	msgAccessDenied       = "доступ к чужой сессии запрещён"
	msgSessionBusy        = "сессия занята подтверждением, повторите позже"
	msgSessionConfirmed   = "заявка уже подтверждена, изменения недоступны"
	msgObjectNotFound     = "объект каталога не найден"
	msgInvalidInput       = "некорректные данные позиции"
	msgDatesOutOfWindow   = "даты позиции выходят за период поездки"
)

type Handler struct {
	useCase AddLineItemUseCase
	logger  Logger
}

func NewHandler(useCase AddLineItemUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetOperatorID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingOperator)
		return
	}

	sessionID := mux.Vars(r)["sessionId"]

	var req AddLineItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID, operatorID)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/items - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, addLineItem.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/items - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, addLineItem.ErrAccessDenied):
			h.logger.Warn("POST /sessions/{id}/items - Access denied: session=%s, operator=%d",
				sessionID, operatorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, addLineItem.ErrSessionBusy):
			h.logger.Warn("POST /sessions/{id}/items - Session busy: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionBusy)

		case errors.Is(err, addLineItem.ErrSessionConfirmed):
			h.logger.Warn("POST /sessions/{id}/items - Session confirmed: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionConfirmed)

		case errors.Is(err, addLineItem.ErrObjectNotFound):
			h.logger.Warn("POST /sessions/{id}/items - Object not found: category=%s, object=%d",
				req.Category, req.ObjectID)
			handlers.RespondNotFound(w, msgObjectNotFound)

		case errors.Is(err, addLineItem.ErrDatesOutOfWindow):
			h.logger.Warn("POST /sessions/{id}/items - Dates rejected: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDatesOutOfWindow)

		case errors.Is(err, addLineItem.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/items - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /sessions/{id}/items - Failed to add item: session=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/items - Item added: session=%s, item=%s, price=%.2f",
		sessionID, result.ItemID, result.Price)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
