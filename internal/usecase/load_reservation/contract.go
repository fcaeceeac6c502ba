package load_reservation

import (
	"context"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	"github.com/m04kA/TourOperator-BookingService/internal/integrations/reservationservice"
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard"
)

// WizardService интерфейс сервиса сессий мастера
type WizardService interface {
	ApplyAction(ctx context.Context, sessionID string, operatorID int64, action wizard.Action) (*domain.WizardSession, error)
}

// ReservationServiceClient интерфейс клиента ReservationService
type ReservationServiceClient interface {
	GetReservation(ctx context.Context, id int64) (*reservationservice.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
