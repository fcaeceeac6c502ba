package confirm_booking

import (
	"context"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	"github.com/m04kA/TourOperator-BookingService/internal/integrations/clientservice"
	"github.com/m04kA/TourOperator-BookingService/internal/integrations/reservationservice"
)

// SessionRepository интерфейс репозитория сессий мастера
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.WizardSession, error)
	UpdateState(ctx context.Context, id string, state domain.BookingState) error
	AcquireBusy(ctx context.Context, id string) error
	ReleaseBusy(ctx context.Context, id string) error
	Finalize(ctx context.Context, id string, reservationID int64) error
}

// ClientServiceClient интерфейс клиента ClientService
type ClientServiceClient interface {
	CreateClient(ctx context.Context, req *clientservice.CreateClientRequest) (int64, error)
}

// ReservationServiceClient интерфейс клиента ReservationService
type ReservationServiceClient interface {
	CreateReservation(ctx context.Context, req *reservationservice.CreateReservationRequest) (int64, error)
	UpdateReservation(ctx context.Context, id int64, req *reservationservice.UpdateReservationRequest) error
}

// PlanGenerator интерфейс сервиса построения планов поездок
type PlanGenerator interface {
	GenerateFromState(ctx context.Context, reservationID int64, state domain.BookingState) *domain.TravelPlan
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
