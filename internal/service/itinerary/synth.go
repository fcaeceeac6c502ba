package itinerary

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	"github.com/m04kA/TourOperator-BookingService/pkg/ptr"
)

// Метки слотов дневного расписания
const (
	slotTimeFlight  = "per flight schedule"
	slotTimeMorning = "09:00"
	slotTimeMidday  = "12:00"
	slotTimeEvening = "18:00"
)

// Input закрытый набор позиций для построения плана поездки
// Каждый вариант несёт только те поля, которые читает синтезатор;
// разбор и проверка формы выполняются на границе коллекции, не здесь
type Input struct {
	Window      domain.DateRange
	Destination string

	Flights        []FlightInput
	Accommodations []AccommodationInput
	Vehicles       []VehicleInput
	Activities     []ActivityInput
}

// FlightInput перелёт глазами синтезатора
type FlightInput struct {
	Airline       string
	Origin        string
	Destination   string
	DepartureDate time.Time
	IsReturn      bool
}

// AccommodationInput проживание глазами синтезатора
type AccommodationInput struct {
	Name     string
	Location string
	CheckIn  time.Time
	CheckOut time.Time
}

// VehicleInput аренда транспорта глазами синтезатора
type VehicleInput struct {
	Model           string
	PickupLocation  string
	DropoffLocation string
	StartDate       time.Time
	EndDate         time.Time
}

// ActivityInput экскурсия глазами синтезатора
type ActivityInput struct {
	Title         string
	Location      string
	Date          time.Time
	DurationHours float64
}

// BuildPlan детерминированно строит план поездки: один день на каждый
// календарный день окна включительно
//
// Правила по дням:
//   - день 1: слот прибытия, трансфер при совпадении начала аренды, заселение
//   - последний день (при длительности > 1): сборы и вылет обратным рейсом
//   - остальные дни: экскурсия при совпадении даты, иначе свободный день
//   - проживание относится ко дню по полуоткрытому интервалу
//     CheckIn <= день < CheckOut, поэтому день выезда ночёвки не имеет
//
// При нескольких подходящих позициях на один день берётся первая
// в хронологическом порядке, остальные игнорируются
func BuildPlan(reservationID int64, in Input) *domain.TravelPlan {
	sortInput(&in)

	start := domain.DateOnly(in.Window.Start)
	end := domain.DateOnly(in.Window.End)

	duration := dayCount(start, end)

	destination := in.Destination
	if destination == "" {
		destination = deriveDestination(in)
	}

	plan := &domain.TravelPlan{
		ReservationID: reservationID,
		Title:         fmt.Sprintf("Trip to %s", destination),
		Destination:   destination,
		Days:          make([]domain.PlanDay, 0, duration),
	}

	for n := 1; n <= duration; n++ {
		day := start.AddDate(0, 0, n-1)
		plan.Days = append(plan.Days, buildDay(n, duration, day, destination, in))
	}

	return plan
}

// buildDay собирает один день плана
func buildDay(number, duration int, day time.Time, destination string, in Input) domain.PlanDay {
	pd := domain.PlanDay{
		Number:   number,
		Date:     day,
		Location: destination,
		Meals: domain.MealFlags{
			Breakfast: number != 1,
			Lunch:     true,
			Dinner:    number != duration,
		},
	}

	switch {
	case number == 1:
		pd.Title = domain.DayTitleArrival
		pd.Slots = append(pd.Slots, domain.PlanSlot{
			TimeLabel:   slotTimeFlight,
			Description: arrivalDescription(in),
			Included:    true,
		})
		if v, ok := vehicleStartingOn(day, in.Vehicles); ok {
			pd.Slots = append(pd.Slots, domain.PlanSlot{
				TimeLabel:   slotTimeMidday,
				Description: fmt.Sprintf("Pick up %s: %s → %s", v.Model, v.PickupLocation, v.DropoffLocation),
				Included:    true,
			})
			pd.Transport = ptr.Ptr(v.Model)
		}
		pd.Slots = append(pd.Slots, domain.PlanSlot{
			TimeLabel:   slotTimeEvening,
			Description: "Check in and settle in",
			Included:    true,
		})

	case number == duration:
		pd.Title = domain.DayTitleDeparture
		pd.Slots = append(pd.Slots, domain.PlanSlot{
			TimeLabel:   slotTimeMorning,
			Description: "Pack and prepare for departure",
			Included:    false,
		})
		pd.Slots = append(pd.Slots, domain.PlanSlot{
			TimeLabel:   slotTimeFlight,
			Description: departureDescription(in),
			Included:    true,
		})

	default:
		pd.Title = fmt.Sprintf(domain.DayTitleDiscovery, number)
		if act, ok := activityOn(day, in.Activities); ok {
			pd.Slots = append(pd.Slots, domain.PlanSlot{
				TimeLabel:     slotTimeMorning,
				Description:   fmt.Sprintf("Organized excursion: %s (%s)", act.Title, act.Location),
				DurationHours: act.DurationHours,
				Included:      true,
			})
		} else {
			pd.Slots = append(pd.Slots, domain.PlanSlot{
				TimeLabel:   slotTimeMorning,
				Description: "Free day at leisure",
				Included:    false,
			})
		}
		if v, ok := vehicleCovering(day, in.Vehicles); ok {
			pd.Transport = ptr.Ptr(fmt.Sprintf("Rental %s available", v.Model))
		}
	}

	// Ночёвка относится ко дню по полуоткрытому интервалу
	if acc, ok := accommodationCovering(day, in.Accommodations); ok {
		pd.Accommodation = ptr.Ptr(fmt.Sprintf("%s, %s", acc.Name, acc.Location))
		if pd.Location == destination && acc.Location != "" {
			pd.Location = acc.Location
		}
	}

	return pd
}

// dayCount число календарных дней окна, обе границы включительно
func dayCount(start, end time.Time) int {
	if end.Before(start) {
		return 1
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// sortInput приводит все коллекции к хронологическому порядку,
// чтобы правило "первая подходящая позиция" было детерминированным
func sortInput(in *Input) {
	sort.SliceStable(in.Flights, func(i, j int) bool {
		return in.Flights[i].DepartureDate.Before(in.Flights[j].DepartureDate)
	})
	sort.SliceStable(in.Accommodations, func(i, j int) bool {
		return in.Accommodations[i].CheckIn.Before(in.Accommodations[j].CheckIn)
	})
	sort.SliceStable(in.Vehicles, func(i, j int) bool {
		return in.Vehicles[i].StartDate.Before(in.Vehicles[j].StartDate)
	})
	sort.SliceStable(in.Activities, func(i, j int) bool {
		return in.Activities[i].Date.Before(in.Activities[j].Date)
	})
}

// deriveDestination выбирает пункт назначения: первый прямой перелёт,
// иначе первое проживание
func deriveDestination(in Input) string {
	for _, f := range in.Flights {
		if !f.IsReturn && f.Destination != "" {
			return f.Destination
		}
	}
	if len(in.Accommodations) > 0 {
		return in.Accommodations[0].Location
	}
	return "destination"
}

func arrivalDescription(in Input) string {
	for _, f := range in.Flights {
		if !f.IsReturn {
			return fmt.Sprintf("Arrival flight %s: %s → %s", f.Airline, f.Origin, f.Destination)
		}
	}
	return "Arrival and transfer to accommodation"
}

func departureDescription(in Input) string {
	for _, f := range in.Flights {
		if f.IsReturn {
			return fmt.Sprintf("Departure flight %s: %s → %s", f.Airline, f.Origin, f.Destination)
		}
	}
	return "Transfer to airport and departure"
}

func vehicleStartingOn(day time.Time, vehicles []VehicleInput) (VehicleInput, bool) {
	for _, v := range vehicles {
		if domain.SameDay(v.StartDate, day) {
			return v, true
		}
	}
	return VehicleInput{}, false
}

func vehicleCovering(day time.Time, vehicles []VehicleInput) (VehicleInput, bool) {
	for _, v := range vehicles {
		s := domain.DateOnly(v.StartDate)
		e := domain.DateOnly(v.EndDate)
		if !day.Before(s) && !day.After(e) {
			return v, true
		}
	}
	return VehicleInput{}, false
}

func accommodationCovering(day time.Time, accommodations []AccommodationInput) (AccommodationInput, bool) {
	for _, a := range accommodations {
		checkIn := domain.DateOnly(a.CheckIn)
		checkOut := domain.DateOnly(a.CheckOut)
		if !day.Before(checkIn) && day.Before(checkOut) {
			return a, true
		}
	}
	return AccommodationInput{}, false
}

func activityOn(day time.Time, activities []ActivityInput) (ActivityInput, bool) {
	for _, a := range activities {
		if domain.SameDay(a.Date, day) {
			return a, true
		}
	}
	return ActivityInput{}, false
}

// InputFromState собирает вход синтезатора из состояния мастера
func InputFromState(st domain.BookingState) Input {
	in := Input{
		Window: st.TravelDates,
	}

	for _, f := range st.Flights {
		in.Flights = append(in.Flights, FlightInput{
			Airline:       f.Airline,
			Origin:        f.Origin,
			Destination:   f.Destination,
			DepartureDate: f.DepartureDate,
			IsReturn:      f.IsReturn,
		})
	}
	for _, a := range st.Accommodations {
		in.Accommodations = append(in.Accommodations, AccommodationInput{
			Name:     a.Name,
			Location: a.Location,
			CheckIn:  a.CheckIn,
			CheckOut: a.CheckOut,
		})
	}
	for _, v := range st.Vehicles {
		in.Vehicles = append(in.Vehicles, VehicleInput{
			Model:           v.Model,
			PickupLocation:  v.PickupLocation,
			DropoffLocation: v.DropoffLocation,
			StartDate:       v.StartDate,
			EndDate:         v.EndDate,
		})
	}
	for _, act := range st.Activities {
		in.Activities = append(in.Activities, ActivityInput{
			Title:         act.Title,
			Location:      act.Location,
			Date:          act.Date,
			DurationHours: act.DurationHours,
		})
	}

	return in
}
