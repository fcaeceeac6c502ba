package itinerary

import (
	"context"

	"github.com/m04kA/TourOperator-BookingService/internal/integrations/reservationservice"
	"github.com/m04kA/TourOperator-BookingService/internal/integrations/travelplanservice"
)

// TravelPlanClient интерфейс клиента TravelPlanService
type TravelPlanClient interface {
	CreateTravelPlan(ctx context.Context, plan *travelplanservice.TravelPlanPayload) (int64, error)
	GetByReservation(ctx context.Context, reservationID int64) (*travelplanservice.TravelPlanPayload, error)
}

// ReservationClient интерфейс клиента ReservationService
type ReservationClient interface {
	GetReservation(ctx context.Context, id int64) (*reservationservice.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
