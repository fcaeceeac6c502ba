package confirm_booking

import (
	planModels "github.com/m04kA/TourOperator-BookingService/internal/service/itinerary/models"
	confirmBooking "github.com/m04kA/TourOperator-BookingService/internal/usecase/confirm_booking"
)

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	ReservationID int64                          `json:"reservationId"`
	ClientID      int64                          `json:"clientId"`
	Plan          *planModels.TravelPlanResponse `json:"plan,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *confirmBooking.Response) ConfirmBookingResponse {
	out := ConfirmBookingResponse{
		ReservationID: resp.ReservationID,
		ClientID:      resp.ClientID,
	}
	if resp.Plan != nil {
		plan := planModels.FromDomainPlan(resp.Plan)
		out.Plan = &plan
	}
	return out
}
