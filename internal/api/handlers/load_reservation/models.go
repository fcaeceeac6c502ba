package load_reservation

import (
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard/models"
	loadReservation "github.com/m04kA/TourOperator-BookingService/internal/usecase/load_reservation"
)

// LoadReservationRequest HTTP request model
type LoadReservationRequest struct {
	ReservationID int64 `json:"reservationId"`
}

// LoadReservationResponse HTTP response model
type LoadReservationResponse struct {
	Session  models.SessionResponse `json:"session"`
	Warnings []string               `json:"warnings,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *loadReservation.Response) LoadReservationResponse {
	return LoadReservationResponse{
		Session:  models.FromDomainSession(resp.Session),
		Warnings: resp.Warnings,
	}
}
