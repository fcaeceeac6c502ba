package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	"github.com/m04kA/TourOperator-BookingService/pkg/ptr"
)

var testNow = time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

func newTestState() domain.BookingState {
	return domain.NewBookingState(testNow)
}

func flightFixture(id string, price float64, passengers int) domain.FlightItem {
	return domain.FlightItem{
		ID:            id,
		FlightID:      101,
		Airline:       "Aeroflot",
		Origin:        "SVO",
		Destination:   "AYT",
		DepartureDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Passengers:    passengers,
		Price:         price,
	}
}

func accommodationFixture(id string, price float64) domain.AccommodationItem {
	return domain.AccommodationItem{
		ID:              id,
		AccommodationID: 202,
		Name:            "Grand Hotel",
		Location:        "Antalya",
		CheckIn:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC),
		Rooms:           1,
		Price:           price,
	}
}

func TestApply_SetClient(t *testing.T) {
	state := newTestState()

	client := &domain.BookingClient{Name: "Ivan Petrov", Email: "ivan@example.com", PartySize: 2}
	next := Apply(state, Action{Type: ActionSetClient, Client: client}, testNow)

	require.NotNil(t, next.Client)
	assert.Equal(t, "Ivan Petrov", next.Client.Name)
	assert.Nil(t, state.Client, "предыдущее состояние не должно меняться")
}

func TestApply_AddItems_TotalsInvariant(t *testing.T) {
	state := newTestState()

	state = Apply(state, Action{Type: ActionAddFlight, Flight: ptr.Ptr(flightFixture("f1", 200, 2))}, testNow)
	state = Apply(state, Action{Type: ActionAddAccommodation, Accommodation: ptr.Ptr(accommodationFixture("a1", 500))}, testNow)
	state = Apply(state, Action{Type: ActionAddVehicle, Vehicle: ptr.Ptr(domain.VehicleItem{ID: "v1", Price: 150})}, testNow)
	state = Apply(state, Action{Type: ActionAddActivity, Activity: ptr.Ptr(domain.ActivityItem{ID: "ac1", Price: 80})}, testNow)

	assert.Equal(t, 200.0, state.Subtotals.Flights)
	assert.Equal(t, 500.0, state.Subtotals.Accommodations)
	assert.Equal(t, 150.0, state.Subtotals.Vehicles)
	assert.Equal(t, 80.0, state.Subtotals.Activities)
	assert.Equal(t, 930.0, state.TotalPrice)
	assert.Equal(t, state.Subtotals.Sum(), state.TotalPrice)
}

func TestApply_RemoveItem_RecomputesTotals(t *testing.T) {
	state := newTestState()
	state = Apply(state, Action{Type: ActionAddFlight, Flight: ptr.Ptr(flightFixture("f1", 200, 2))}, testNow)
	state = Apply(state, Action{Type: ActionAddFlight, Flight: ptr.Ptr(flightFixture("f2", 300, 3))}, testNow)

	next := Apply(state, Action{Type: ActionRemoveFlight, ItemID: "f1"}, testNow)

	require.Len(t, next.Flights, 1)
	assert.Equal(t, "f2", next.Flights[0].ID)
	assert.Equal(t, 300.0, next.TotalPrice)
	assert.Len(t, state.Flights, 2, "предыдущее состояние не должно меняться")
}

func TestApply_RemoveUnknownItem_NoOp(t *testing.T) {
	state := newTestState()
	state = Apply(state, Action{Type: ActionAddFlight, Flight: ptr.Ptr(flightFixture("f1", 200, 2))}, testNow)

	next := Apply(state, Action{Type: ActionRemoveFlight, ItemID: "missing"}, testNow)

	assert.Equal(t, state, next)
}

func TestApply_UpdateFlight_PreservesUnitPrice(t *testing.T) {
	state := newTestState()
	state = Apply(state, Action{Type: ActionAddFlight, Flight: ptr.Ptr(flightFixture("f1", 200, 2))}, testNow)

	next := Apply(state, Action{Type: ActionUpdateFlight, ItemID: "f1", Passengers: 4}, testNow)

	require.Len(t, next.Flights, 1)
	assert.Equal(t, 4, next.Flights[0].Passengers)
	assert.Equal(t, 400.0, next.Flights[0].Price)
	assert.Equal(t, 400.0, next.TotalPrice)

	// Исходное состояние не тронуто
	assert.Equal(t, 2, state.Flights[0].Passengers)
	assert.Equal(t, 200.0, state.Flights[0].Price)
}

func TestApply_UpdateFlight_InvalidInput_NoOp(t *testing.T) {
	state := newTestState()
	state = Apply(state, Action{Type: ActionAddFlight, Flight: ptr.Ptr(flightFixture("f1", 200, 2))}, testNow)

	tests := []struct {
		name   string
		action Action
	}{
		{"нулевое число пассажиров", Action{Type: ActionUpdateFlight, ItemID: "f1", Passengers: 0}},
		{"отрицательное число пассажиров", Action{Type: ActionUpdateFlight, ItemID: "f1", Passengers: -1}},
		{"неизвестная позиция", Action{Type: ActionUpdateFlight, ItemID: "nope", Passengers: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Apply(state, tt.action, testNow)
			assert.Equal(t, state, next)
		})
	}
}

func TestApply_StepGating(t *testing.T) {
	tests := []struct {
		name         string
		visited      []int
		maxVisited   int
		current      int
		target       int
		wantStep     int
		wantMax      int
		expectChange bool
	}{
		{
			name:         "переход на посещённый шаг",
			visited:      []int{1, 2, 3},
			maxVisited:   3,
			current:      3,
			target:       1,
			wantStep:     1,
			wantMax:      3,
			expectChange: true,
		},
		{
			name:         "переход на следующий за максимальным",
			visited:      []int{1, 2},
			maxVisited:   2,
			current:      2,
			target:       3,
			wantStep:     3,
			wantMax:      3,
			expectChange: true,
		},
		{
			name:         "прыжок через шаг отклоняется",
			visited:      []int{1},
			maxVisited:   1,
			current:      1,
			target:       4,
			expectChange: false,
		},
		{
			name:         "прыжок в конец отклоняется",
			visited:      []int{1, 2},
			maxVisited:   2,
			current:      2,
			target:       6,
			expectChange: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newTestState()
			state.VisitedSteps = tt.visited
			state.MaxVisitedStep = tt.maxVisited
			state.CurrentStep = tt.current

			next := Apply(state, Action{Type: ActionSetCurrentStep, Step: tt.target}, testNow)

			if !tt.expectChange {
				// Отказ - молчаливый no-op, состояние бит-в-бит прежнее
				assert.Equal(t, state, next)
				return
			}
			assert.Equal(t, tt.wantStep, next.CurrentStep)
			assert.Equal(t, tt.wantMax, next.MaxVisitedStep)
			assert.True(t, next.HasVisited(tt.target))
		})
	}
}

func TestApply_NextStep_ClampsAndMarksVisited(t *testing.T) {
	state := newTestState()

	for i := 0; i < 10; i++ {
		state = Apply(state, Action{Type: ActionNextStep}, testNow)
	}

	assert.Equal(t, domain.TotalSteps, state.CurrentStep)
	assert.Equal(t, domain.TotalSteps, state.MaxVisitedStep)
	for step := 1; step <= domain.TotalSteps; step++ {
		assert.True(t, state.HasVisited(step), "шаг %d должен быть посещён", step)
	}
	assert.True(t, state.IsComplete())
}

func TestApply_PrevStep_DoesNotTouchVisited(t *testing.T) {
	state := newTestState()
	state = Apply(state, Action{Type: ActionNextStep}, testNow)
	state = Apply(state, Action{Type: ActionNextStep}, testNow)

	next := Apply(state, Action{Type: ActionPrevStep}, testNow)

	assert.Equal(t, 2, next.CurrentStep)
	assert.Equal(t, state.VisitedSteps, next.VisitedSteps)
	assert.Equal(t, 3, next.MaxVisitedStep)

	// Клэмп на первом шаге
	first := newTestState()
	assert.Equal(t, 1, Apply(first, Action{Type: ActionPrevStep}, testNow).CurrentStep)
}

func TestApply_ResetBooking(t *testing.T) {
	state := newTestState()
	state = Apply(state, Action{Type: ActionAddFlight, Flight: ptr.Ptr(flightFixture("f1", 200, 2))}, testNow)
	state = Apply(state, Action{Type: ActionNextStep}, testNow)
	state = Apply(state, Action{Type: ActionSetNotes, Notes: ptr.Ptr("vip")}, testNow)

	resetNow := time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)
	next := Apply(state, Action{Type: ActionResetBooking}, resetNow)

	assert.Equal(t, 1, next.CurrentStep)
	assert.Equal(t, []int{1}, next.VisitedSteps)
	assert.Equal(t, 1, next.MaxVisitedStep)
	assert.Empty(t, next.Flights)
	assert.Empty(t, next.Accommodations)
	assert.Empty(t, next.Vehicles)
	assert.Empty(t, next.Activities)
	assert.Equal(t, 0.0, next.TotalPrice)
	assert.Nil(t, next.Notes)

	// Период поездки пересеян от текущей даты
	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), next.TravelDates.Start)
	assert.Equal(t, time.Date(2024, 7, 22, 0, 0, 0, 0, time.UTC), next.TravelDates.End)
}

func TestApply_SetTravelDates_NoRetroactiveValidation(t *testing.T) {
	state := newTestState()
	state = Apply(state, Action{Type: ActionAddFlight, Flight: ptr.Ptr(flightFixture("f1", 200, 2))}, testNow)

	newRange := &domain.DateRange{
		Start: time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 9, 10, 18, 0, 0, 0, time.UTC),
	}
	next := Apply(state, Action{Type: ActionSetTravelDates, TravelDates: newRange}, testNow)

	// Время суток отбрасывается, позиции остаются как есть
	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), next.TravelDates.Start)
	assert.Equal(t, time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC), next.TravelDates.End)
	assert.Len(t, next.Flights, 1)
	assert.Equal(t, 200.0, next.TotalPrice)
}

func TestApply_LoadReservation(t *testing.T) {
	state := newTestState()
	state = Apply(state, Action{Type: ActionAddFlight, Flight: ptr.Ptr(flightFixture("old", 999, 1))}, testNow)

	payload := &LoadPayload{
		Flights:        []domain.FlightItem{flightFixture("f1", 400, 2)},
		Accommodations: []domain.AccommodationItem{accommodationFixture("a1", 600)},
		TravelDates: &domain.DateRange{
			Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC),
		},
		Currency: "EUR",
	}

	next := Apply(state, Action{Type: ActionLoadReservation, Load: payload}, testNow)

	// Старые позиции вытеснены, отсутствующие коллекции пустые
	require.Len(t, next.Flights, 1)
	assert.Equal(t, "f1", next.Flights[0].ID)
	assert.Empty(t, next.Vehicles)
	assert.Empty(t, next.Activities)
	assert.NotNil(t, next.Vehicles)
	assert.NotNil(t, next.Activities)

	// Все шаги посещены
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, next.VisitedSteps)
	assert.Equal(t, domain.TotalSteps, next.MaxVisitedStep)
	assert.True(t, next.IsComplete())

	// Итоги пересчитаны из коллекций
	assert.Equal(t, 1000.0, next.TotalPrice)
	assert.Equal(t, "EUR", next.Currency)
}

func TestApply_LoadReservation_IncomingTotalWins(t *testing.T) {
	state := newTestState()

	payload := &LoadPayload{
		Flights:    []domain.FlightItem{flightFixture("f1", 400, 2)},
		TotalPrice: ptr.Ptr(450.0),
	}

	next := Apply(state, Action{Type: ActionLoadReservation, Load: payload}, testNow)

	assert.Equal(t, 450.0, next.TotalPrice)
	assert.Equal(t, 400.0, next.Subtotals.Flights)
}

func TestApply_LoadReservation_ZeroIncomingTotalRecomputes(t *testing.T) {
	state := newTestState()

	payload := &LoadPayload{
		Flights:    []domain.FlightItem{flightFixture("f1", 400, 2)},
		TotalPrice: ptr.Ptr(0.0),
	}

	next := Apply(state, Action{Type: ActionLoadReservation, Load: payload}, testNow)

	assert.Equal(t, 400.0, next.TotalPrice)
}

func TestApply_UnknownAction_NoOp(t *testing.T) {
	state := newTestState()
	next := Apply(state, Action{Type: ActionType("EXPLODE")}, testNow)
	assert.Equal(t, state, next)
}

func TestApply_CalculateTotals_Idempotent(t *testing.T) {
	state := newTestState()
	state = Apply(state, Action{Type: ActionAddFlight, Flight: ptr.Ptr(flightFixture("f1", 200, 2))}, testNow)

	once := Apply(state, Action{Type: ActionCalculateTotals}, testNow)
	twice := Apply(once, Action{Type: ActionCalculateTotals}, testNow)

	assert.Equal(t, once, twice)
	assert.Equal(t, 200.0, twice.TotalPrice)
}
