package load_reservation

import (
	"context"

	loadReservation "github.com/m04kA/TourOperator-BookingService/internal/usecase/load_reservation"
)

type LoadReservationUseCase interface {
	Execute(ctx context.Context, req *loadReservation.Request) (*loadReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
