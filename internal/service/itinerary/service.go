package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	"github.com/m04kA/TourOperator-BookingService/internal/integrations/reservationservice"
	"github.com/m04kA/TourOperator-BookingService/internal/integrations/travelplanservice"
)

// Service сервис построения планов поездок
// Построение чистое и детерминированное; сервис добавляет к нему
// получение исходных данных и сохранение результата во внешнем сервисе
type Service struct {
	plans        TravelPlanClient
	reservations ReservationClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса планов поездок
func NewService(plans TravelPlanClient, reservations ReservationClient, logger Logger) *Service {
	return &Service{
		plans:        plans,
		reservations: reservations,
		logger:       logger,
	}
}

// GenerateFromState строит план из состояния мастера и пытается сохранить
// его во внешнем сервисе. Ошибка сохранения не считается ошибкой построения:
// план возвращается в любом случае, неудача только логируется
func (s *Service) GenerateFromState(ctx context.Context, reservationID int64, state domain.BookingState) *domain.TravelPlan {
	plan := BuildPlan(reservationID, InputFromState(state))

	id, err := s.plans.CreateTravelPlan(ctx, toPayload(plan))
	if err != nil {
		s.logger.Warn("GenerateFromState: failed to persist plan for reservation=%d: %v", reservationID, err)
		return plan
	}

	plan.ID = &id
	s.logger.Info("GenerateFromState: plan id=%d persisted for reservation=%d, days=%d",
		id, reservationID, len(plan.Days))
	return plan
}

// GenerateFromReservation возвращает существующий план бронирования либо
// строит новый из данных ReservationService
func (s *Service) GenerateFromReservation(ctx context.Context, reservationID int64) (*domain.TravelPlan, error) {
	existing, err := s.plans.GetByReservation(ctx, reservationID)
	if err == nil {
		s.logger.Info("GenerateFromReservation: found existing plan for reservation=%d", reservationID)
		return fromPayload(existing), nil
	}
	if !errors.Is(err, travelplanservice.ErrPlanNotFound) {
		s.logger.Error("GenerateFromReservation: plan lookup failed for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GenerateFromReservation - plan lookup: %v", ErrInternal, err)
	}

	reservation, err := s.reservations.GetReservation(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationservice.ErrReservationNotFound) {
			s.logger.Warn("GenerateFromReservation: reservation=%d not found", reservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GenerateFromReservation: reservation fetch failed for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GenerateFromReservation - reservation fetch: %v", ErrInternal, err)
	}

	in, warnings := inputFromReservation(reservation)
	for _, w := range warnings {
		s.logger.Warn("GenerateFromReservation: reservation=%d: %s", reservationID, w)
	}

	plan := BuildPlan(reservationID, in)

	id, err := s.plans.CreateTravelPlan(ctx, toPayload(plan))
	if err != nil {
		s.logger.Warn("GenerateFromReservation: failed to persist plan for reservation=%d: %v", reservationID, err)
		return plan, nil
	}

	plan.ID = &id
	return plan, nil
}

// inputFromReservation переводит бронирование внешнего сервиса во вход
// синтезатора. Коллекции приходят как сырой JSON и могут иметь любую форму:
// всё, что не является массивом, сводится к пустой коллекции с предупреждением
func inputFromReservation(r *reservationservice.Reservation) (Input, []string) {
	var warnings []string

	in := Input{}

	if start, ok := parseDate(r.StartDate); ok {
		in.Window.Start = start
	} else {
		warnings = append(warnings, fmt.Sprintf("unparsable reservation start date %q", r.StartDate))
	}
	if end, ok := parseDate(r.EndDate); ok {
		in.Window.End = end
	} else {
		warnings = append(warnings, fmt.Sprintf("unparsable reservation end date %q", r.EndDate))
	}

	flights, ws := coerceSubBookings(r.Flights, "flights")
	warnings = append(warnings, ws...)
	for _, sb := range flights {
		f := FlightInput{
			Airline:     sb.Name,
			Destination: sb.Location,
			IsReturn:    sb.IsReturn != nil && *sb.IsReturn,
		}
		if d, ok := parseDate(sb.StartDate); ok {
			f.DepartureDate = d
		}
		in.Flights = append(in.Flights, f)
	}

	accommodations, ws := coerceSubBookings(r.Accommodations, "accommodations")
	warnings = append(warnings, ws...)
	for _, sb := range accommodations {
		a := AccommodationInput{Name: sb.Name, Location: sb.Location}
		if d, ok := parseDate(sb.StartDate); ok {
			a.CheckIn = d
		}
		if sb.EndDate != nil {
			if d, ok := parseDate(*sb.EndDate); ok {
				a.CheckOut = d
			}
		}
		in.Accommodations = append(in.Accommodations, a)
	}

	vehicles, ws := coerceSubBookings(r.Vehicles, "vehicles")
	warnings = append(warnings, ws...)
	for _, sb := range vehicles {
		v := VehicleInput{
			Model:           sb.Name,
			PickupLocation:  sb.Location,
			DropoffLocation: sb.Location,
		}
		if d, ok := parseDate(sb.StartDate); ok {
			v.StartDate = d
		}
		if sb.EndDate != nil {
			if d, ok := parseDate(*sb.EndDate); ok {
				v.EndDate = d
			}
		}
		in.Vehicles = append(in.Vehicles, v)
	}

	activities, ws := coerceSubBookings(r.Activities, "activities")
	warnings = append(warnings, ws...)
	for _, sb := range activities {
		a := ActivityInput{Title: sb.Name, Location: sb.Location}
		if d, ok := parseDate(sb.StartDate); ok {
			a.Date = d
		}
		in.Activities = append(in.Activities, a)
	}

	return in, warnings
}

// coerceSubBookings разбирает сырую коллекцию позиций
// null и отсутствие поля считаются пустой коллекцией без предупреждения,
// любая другая не-массивная форма сводится к пустой с предупреждением
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
		// Иногда сервис отдаёт полный timestamp вместо даты
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, false
		}
	}
	return domain.DateOnly(t), true
}

// toPayload конвертирует доменный план в payload TravelPlanService
func toPayload(p *domain.TravelPlan) *travelplanservice.TravelPlanPayload {
	payload := &travelplanservice.TravelPlanPayload{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Title:         p.Title,
		Destination:   p.Destination,
		Days:          make([]travelplanservice.PlanDayPayload, 0, len(p.Days)),
	}

	for _, d := range p.Days {
		day := travelplanservice.PlanDayPayload{
			Number:        d.Number,
			Date:          d.Date.Format(domain.DateFormat),
			Location:      d.Location,
			Title:         d.Title,
			Slots:         make([]travelplanservice.PlanSlotPayload, 0, len(d.Slots)),
			Accommodation: d.Accommodation,
			Meals: travelplanservice.MealsPayload{
				Breakfast: d.Meals.Breakfast,
				Lunch:     d.Meals.Lunch,
				Dinner:    d.Meals.Dinner,
			},
			Transport: d.Transport,
			Note:      d.Note,
		}
		for _, sl := range d.Slots {
			day.Slots = append(day.Slots, travelplanservice.PlanSlotPayload{
				TimeLabel:     sl.TimeLabel,
				Description:   sl.Description,
				DurationHours: sl.DurationHours,
				Included:      sl.Included,
			})
		}
		payload.Days = append(payload.Days, day)
	}

	return payload
}

// fromPayload конвертирует payload TravelPlanService в доменный план
func fromPayload(p *travelplanservice.TravelPlanPayload) *domain.TravelPlan {
	plan := &domain.TravelPlan{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Title:         p.Title,
		Destination:   p.Destination,
		Days:          make([]domain.PlanDay, 0, len(p.Days)),
	}

	for _, d := range p.Days {
		day := domain.PlanDay{
			Number:        d.Number,
			Location:      d.Location,
			Title:         d.Title,
			Slots:         make([]domain.PlanSlot, 0, len(d.Slots)),
			Accommodation: d.Accommodation,
			Meals: domain.MealFlags{
				Breakfast: d.Meals.Breakfast,
				Lunch:     d.Meals.Lunch,
				Dinner:    d.Meals.Dinner,
			},
			Transport: d.Transport,
			Note:      d.Note,
		}
		if t, ok := parseDate(d.Date); ok {
			day.Date = t
		}
		for _, sl := range d.Slots {
			day.Slots = append(day.Slots, domain.PlanSlot{
				TimeLabel:     sl.TimeLabel,
				Description:   sl.Description,
				DurationHours: sl.DurationHours,
				Included:      sl.Included,
			})
		}
		plan.Days = append(plan.Days, day)
	}

	return plan
}
