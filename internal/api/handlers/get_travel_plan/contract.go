package get_travel_plan

import (
	"context"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
)

type ItineraryService interface {
	GenerateFromReservation(ctx context.Context, reservationID int64) (*domain.TravelPlan, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
