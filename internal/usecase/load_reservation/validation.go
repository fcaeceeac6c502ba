package load_reservation

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	"github.com/m04kA/TourOperator-BookingService/internal/integrations/reservationservice"
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard"
)

// buildLoadPayload валидирующий конструктор полезной нагрузки LOAD_RESERVATION
//
// Граница "разбирай, а не доверяй": форма коллекций внешнего ответа
// не гарантируется, поэтому каждое поле либо разбирается в типизированную
// позицию, либо сводится к пустому значению с предупреждением.
// Загрузка не падает из-за кривого поля - оператор видит список приведений
func buildLoadPayload(r *reservationservice.Reservation) (*wizard.LoadPayload, []string) {
	var warnings []string

	payload := &wizard.LoadPayload{
		Currency:   r.Currency,
		Notes:      r.Notes,
		TotalPrice: r.TotalAmount,
	}

	start, okStart := parseDate(r.StartDate)
	end, okEnd := parseDate(r.EndDate)
	if okStart && okEnd {
		payload.TravelDates = &domain.DateRange{Start: start, End: end}
	} else {
		warnings = append(warnings, "travel dates are unparsable, keeping current window")
	}

	flights, ws := coerceSubBookings(r.Flights, "flights")
	warnings = append(warnings, ws...)
	for _, sb := range flights {
		item := domain.FlightItem{
			ID:            uuid.NewString(),
			FlightID:      sb.ObjectID,
			Airline:       sb.Name,
			Destination:   sb.Location,
			Passengers:    sb.Quantity,
			Price:         sb.Price,
			IsReturn:      sb.IsReturn != nil && *sb.IsReturn,
			ReservationID: &r.ID,
		}
		if d, ok := parseDate(sb.StartDate); ok {
			item.DepartureDate = d
		}
		if sb.EndDate != nil {
			if d, ok := parseDate(*sb.EndDate); ok {
				item.ReturnDate = &d
			}
		}
		payload.Flights = append(payload.Flights, item)
	}

	accommodations, ws := coerceSubBookings(r.Accommodations, "accommodations")
	warnings = append(warnings, ws...)
	for _, sb := range accommodations {
		item := domain.AccommodationItem{
			ID:              uuid.NewString(),
			AccommodationID: sb.ObjectID,
			Name:            sb.Name,
			Location:        sb.Location,
			Rooms:           sb.Quantity,
			Price:           sb.Price,
			ReservationID:   &r.ID,
		}
		if d, ok := parseDate(sb.StartDate); ok {
			item.CheckIn = d
		}
		if sb.EndDate != nil {
			if d, ok := parseDate(*sb.EndDate); ok {
				item.CheckOut = d
			}
		}
		payload.Accommodations = append(payload.Accommodations, item)
	}

	vehicles, ws := coerceSubBookings(r.Vehicles, "vehicles")
	warnings = append(warnings, ws...)
	for _, sb := range vehicles {
		item := domain.VehicleItem{
			ID:            uuid.NewString(),
			VehicleID:     sb.ObjectID,
			Model:         sb.Name,
			Days:          sb.Quantity,
			Price:         sb.Price,
			ReservationID: &r.ID,
		}
		if d, ok := parseDate(sb.StartDate); ok {
			item.StartDate = d
		}
		if sb.EndDate != nil {
			if d, ok := parseDate(*sb.EndDate); ok {
				item.EndDate = d
			}
		}
		payload.Vehicles = append(payload.Vehicles, item)
	}

	activities, ws := coerceSubBookings(r.Activities, "activities")
	warnings = append(warnings, ws...)
	for _, sb := range activities {
		item := domain.ActivityItem{
			ID:            uuid.NewString(),
			ActivityID:    sb.ObjectID,
			Title:         sb.Name,
			Location:      sb.Location,
			Participants:  sb.Quantity,
			Price:         sb.Price,
			ReservationID: &r.ID,
		}
		if d, ok := parseDate(sb.StartDate); ok {
			item.Date = d
		}
		payload.Activities = append(payload.Activities, item)
	}

	return payload, warnings
}

// coerceSubBookings разбирает сырую коллекцию позиций
// null и отсутствие поля - пустая коллекция без предупреждения,
// любая другая не-массивная форма - пустая коллекция с предупреждением
func coerceSubBookings(raw json.RawMessage, field string) ([]reservationservice.SubBooking, []string) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var items []reservationservice.SubBooking
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, []string{fmt.Sprintf("field %q is not a valid collection, treated as empty", field)}
	}
	return items, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, false
		}
	}
	return domain.DateOnly(t), true
}
