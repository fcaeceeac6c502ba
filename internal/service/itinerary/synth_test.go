package itinerary

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
)

func date(day int) time.Time {
	return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC)
}

// weekInput типовая недельная поездка: прямой и обратный перелёты,
// проживание с выездом за день до вылета, аренда и одна экскурсия
func weekInput() Input {
	return Input{
		Window: domain.DateRange{Start: date(1), End: date(7)},
		Flights: []FlightInput{
			{Airline: "TAP", Origin: "Moscow", Destination: "Lisbon", DepartureDate: date(1)},
			{Airline: "TAP", Origin: "Lisbon", Destination: "Moscow", DepartureDate: date(7), IsReturn: true},
		},
		Accommodations: []AccommodationInput{
			{Name: "Hotel Avenida", Location: "Lisbon", CheckIn: date(1), CheckOut: date(6)},
		},
		Vehicles: []VehicleInput{
			{Model: "Fiat 500", PickupLocation: "Lisbon Airport", DropoffLocation: "Lisbon Airport", StartDate: date(2), EndDate: date(4)},
		},
		Activities: []ActivityInput{
			{Title: "Sintra tour", Location: "Sintra", Date: date(3), DurationHours: 6},
		},
	}
}

func TestBuildPlan_WeekTrip(t *testing.T) {
	plan := BuildPlan(77, weekInput())

	require.Len(t, plan.Days, 7, "окно 1..7 июня включительно даёт 7 дней")
	assert.Equal(t, int64(77), plan.ReservationID)
	assert.Equal(t, "Lisbon", plan.Destination, "назначение берётся из прямого перелёта")
	assert.Equal(t, "Trip to Lisbon", plan.Title)

	for i, day := range plan.Days {
		assert.Equal(t, i+1, day.Number)
		assert.Equal(t, date(i+1), day.Date)
	}
}

func TestBuildPlan_ArrivalDay(t *testing.T) {
	plan := BuildPlan(77, weekInput())
	day := plan.Days[0]

	assert.Equal(t, domain.DayTitleArrival, day.Title)
	require.Len(t, day.Slots, 2, "аренда начинается со 2-го дня, слота трансфера нет")
	assert.Equal(t, slotTimeFlight, day.Slots[0].TimeLabel)
	assert.Equal(t, "Arrival flight TAP: Moscow → Lisbon", day.Slots[0].Description)
	assert.True(t, day.Slots[0].Included)
	assert.Equal(t, "Check in and settle in", day.Slots[1].Description)

	assert.False(t, day.Meals.Breakfast, "в день прибытия завтрака нет")
	assert.True(t, day.Meals.Lunch)
	assert.True(t, day.Meals.Dinner)

	require.NotNil(t, day.Accommodation)
	assert.Equal(t, "Hotel Avenida, Lisbon", *day.Accommodation)
}

func TestBuildPlan_VehiclePickupOnArrivalDay(t *testing.T) {
	in := weekInput()
	in.Vehicles[0].StartDate = date(1)

	plan := BuildPlan(77, in)
	day := plan.Days[0]

	require.Len(t, day.Slots, 3)
	assert.Equal(t, "Pick up Fiat 500: Lisbon Airport → Lisbon Airport", day.Slots[1].Description)
	require.NotNil(t, day.Transport)
	assert.Equal(t, "Fiat 500", *day.Transport)
}

func TestBuildPlan_DepartureDay(t *testing.T) {
	plan := BuildPlan(77, weekInput())
	day := plan.Days[6]

	assert.Equal(t, domain.DayTitleDeparture, day.Title)
	require.Len(t, day.Slots, 2)
	assert.Equal(t, "Pack and prepare for departure", day.Slots[0].Description)
	assert.False(t, day.Slots[0].Included)
	assert.Equal(t, "Departure flight TAP: Lisbon → Moscow", day.Slots[1].Description)
	assert.True(t, day.Slots[1].Included)

	assert.True(t, day.Meals.Breakfast)
	assert.False(t, day.Meals.Dinner, "в день вылета ужина нет")
	assert.Nil(t, day.Accommodation, "выезд 6-го числа, ночёвки в последний день нет")
}

func TestBuildPlan_MiddleDays(t *testing.T) {
	plan := BuildPlan(77, weekInput())

	// День 3: экскурсия
	day3 := plan.Days[2]
	assert.Equal(t, fmt.Sprintf(domain.DayTitleDiscovery, 3), day3.Title)
	require.Len(t, day3.Slots, 1)
	assert.Equal(t, "Organized excursion: Sintra tour (Sintra)", day3.Slots[0].Description)
	assert.Equal(t, float64(6), day3.Slots[0].DurationHours)
	assert.True(t, day3.Slots[0].Included)
	require.NotNil(t, day3.Transport, "аренда 2..4 июня покрывает день 3")
	assert.Equal(t, "Rental Fiat 500 available", *day3.Transport)

	// День 5: свободный, машина уже сдана
	day5 := plan.Days[4]
	require.Len(t, day5.Slots, 1)
	assert.Equal(t, "Free day at leisure", day5.Slots[0].Description)
	assert.False(t, day5.Slots[0].Included)
	assert.Nil(t, day5.Transport)
	require.NotNil(t, day5.Accommodation, "5 июня ещё внутри интервала проживания")

	// День 6: выезд из отеля, полуоткрытый интервал
	day6 := plan.Days[5]
	assert.Nil(t, day6.Accommodation, "день выезда ночёвки не имеет")
}

func TestBuildPlan_MealFlagsAcrossWeek(t *testing.T) {
	plan := BuildPlan(77, weekInput())

	for _, day := range plan.Days {
		assert.Equal(t, day.Number != 1, day.Meals.Breakfast, "день %d", day.Number)
		assert.True(t, day.Meals.Lunch, "день %d", day.Number)
		assert.Equal(t, day.Number != 7, day.Meals.Dinner, "день %d", day.Number)
	}
}

func TestBuildPlan_FirstMatchWins(t *testing.T) {
	in := weekInput()
	in.Activities = []ActivityInput{
		{Title: "Boat trip", Location: "Cascais", Date: date(3)},
		{Title: "Walking tour", Location: "Sintra", Date: date(3)},
	}

	plan := BuildPlan(77, in)
	day3 := plan.Days[2]

	require.Len(t, day3.Slots, 1, "вторая экскурсия на тот же день игнорируется")
	assert.Contains(t, day3.Slots[0].Description, "Boat trip", "при равных датах сохраняется исходный порядок")
}

func TestBuildPlan_SortsBeforeMatching(t *testing.T) {
	in := weekInput()
	in.Flights = []FlightInput{
		{Airline: "TAP", Origin: "Lisbon", Destination: "Moscow", DepartureDate: date(7), IsReturn: true},
		{Airline: "TAP", Origin: "Moscow", Destination: "Lisbon", DepartureDate: date(1)},
	}

	plan := BuildPlan(77, in)

	assert.Equal(t, "Lisbon", plan.Destination)
	assert.Equal(t, "Arrival flight TAP: Moscow → Lisbon", plan.Days[0].Slots[0].Description)
}

func TestBuildPlan_EmptyInput(t *testing.T) {
	in := Input{Window: domain.DateRange{Start: date(1), End: date(1)}}

	plan := BuildPlan(77, in)

	require.Len(t, plan.Days, 1)
	assert.Equal(t, "Trip to destination", plan.Title)
	assert.Equal(t, "Arrival and transfer to accommodation", plan.Days[0].Slots[0].Description)
}

func TestBuildPlan_DestinationFallsBackToAccommodation(t *testing.T) {
	in := weekInput()
	in.Flights = nil

	plan := BuildPlan(77, in)

	assert.Equal(t, "Lisbon", plan.Destination)
	assert.Equal(t, "Arrival and transfer to accommodation", plan.Days[0].Slots[0].Description)
	assert.Equal(t, "Transfer to airport and departure", plan.Days[6].Slots[1].Description)
}

func TestDayCount(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"неделя включительно", date(1), date(7), 7},
		{"один день", date(1), date(1), 1},
		{"конец раньше начала", date(7), date(1), 1},
		{"две соседние даты", date(1), date(2), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dayCount(tt.start, tt.end))
		})
	}
}

func TestInputFromState(t *testing.T) {
	st := domain.BookingState{
		TravelDates: domain.DateRange{Start: date(1), End: date(7)},
		Flights: []domain.FlightItem{
			{Airline: "TAP", Origin: "Moscow", Destination: "Lisbon", DepartureDate: date(1), IsReturn: false},
		},
		Accommodations: []domain.AccommodationItem{
			{Name: "Hotel Avenida", Location: "Lisbon", CheckIn: date(1), CheckOut: date(6)},
		},
		Vehicles: []domain.VehicleItem{
			{Model: "Fiat 500", PickupLocation: "Airport", DropoffLocation: "Airport", StartDate: date(2), EndDate: date(4)},
		},
		Activities: []domain.ActivityItem{
			{Title: "Sintra tour", Location: "Sintra", Date: date(3), DurationHours: 6},
		},
	}

	in := InputFromState(st)

	assert.Equal(t, st.TravelDates, in.Window)
	require.Len(t, in.Flights, 1)
	assert.Equal(t, "Lisbon", in.Flights[0].Destination)
	require.Len(t, in.Accommodations, 1)
	assert.Equal(t, date(6), in.Accommodations[0].CheckOut)
	require.Len(t, in.Vehicles, 1)
	assert.Equal(t, "Fiat 500", in.Vehicles[0].Model)
	require.Len(t, in.Activities, 1)
	assert.Equal(t, float64(6), in.Activities[0].DurationHours)
}
