package load_reservation

import (
	"context"
	"errors"
	"fmt"

	reservationClient "github.com/m04kA/TourOperator-BookingService/internal/integrations/reservationservice"
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard"
)

// UseCase use case загрузки существующего бронирования в сессию мастера
// Используется в режиме редактирования: оператор открывает бронирование,
// состояние гидратируется целиком и все шаги помечаются посещёнными
type UseCase struct {
	wizardService     WizardService
	reservationClient ReservationServiceClient
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(wizardService WizardService, reservationClient ReservationServiceClient, logger Logger) *UseCase {
	return &UseCase{
		wizardService:     wizardService,
		reservationClient: reservationClient,
		logger:            logger,
	}
}

// Execute выполняет use case загрузки бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LoadReservation: session=%s, reservation=%d, operator=%d",
		req.SessionID, req.ReservationID, req.OperatorID)

	if req.SessionID == "" || req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: session id and reservation id are required", ErrInvalidInput)
	}

	reservation, err := uc.reservationClient.GetReservation(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationClient.ErrReservationNotFound) {
			uc.logger.Warn("LoadReservation: reservation=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("LoadReservation: failed to fetch reservation=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: reservation fetch: %v", ErrInternal, err)
	}

	payload, warnings := buildLoadPayload(reservation)
	for _, w := range warnings {
		uc.logger.Warn("LoadReservation: reservation=%d: %s", req.ReservationID, w)
	}

	session, err := uc.wizardService.ApplyAction(ctx, req.SessionID, req.OperatorID, wizard.Action{
		Type: wizard.ActionLoadReservation,
		Load: payload,
	})
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, wizard.ErrAccessDenied):
			return nil, ErrAccessDenied
		case errors.Is(err, wizard.ErrSessionBusy):
			return nil, ErrSessionBusy
		case errors.Is(err, wizard.ErrSessionConfirmed):
			return nil, ErrSessionConfirmed
		default:
			uc.logger.Error("LoadReservation: failed to hydrate session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: hydrate session: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("LoadReservation: session=%s hydrated from reservation=%d, items=%d, total=%.2f",
		req.SessionID, req.ReservationID, session.State.ItemCount(), session.State.TotalPrice)

	return &Response{
		Session:  session,
		Warnings: warnings,
	}, nil
}
