package wizard

import (
	"time"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
)

// Apply чистый редьюсер мастера: применяет одно действие к состоянию
// и возвращает новое состояние
//
// Инвариант: ни одно действие не оставляет TotalPrice отличным от суммы
// промежуточных итогов. Неизвестные и неприменимые действия возвращают
// состояние без изменений
//
// now нужен только действиям, пересоздающим период поездки (RESET_BOOKING)
func Apply(state domain.BookingState, action Action, now time.Time) domain.BookingState {
	switch action.Type {
	case ActionSetClient:
		// Валидации нет: форма клиента валидируется до диспетчеризации
		st := state
		st.Client = action.Client
		return st

	case ActionAddFlight:
		if action.Flight == nil {
			return state
		}
		st := state
		st.Flights = append(copyFlights(st.Flights), *action.Flight)
		return recomputeTotals(st)

	case ActionAddAccommodation:
		if action.Accommodation == nil {
			return state
		}
		st := state
		st.Accommodations = append(copyAccommodations(st.Accommodations), *action.Accommodation)
		return recomputeTotals(st)

	case ActionAddVehicle:
		if action.Vehicle == nil {
			return state
		}
		st := state
		st.Vehicles = append(copyVehicles(st.Vehicles), *action.Vehicle)
		return recomputeTotals(st)

	case ActionAddActivity:
		if action.Activity == nil {
			return state
		}
		st := state
		st.Activities = append(copyActivities(st.Activities), *action.Activity)
		return recomputeTotals(st)

	case ActionRemoveFlight:
		filtered, removed := removeFlight(state.Flights, action.ItemID)
		if !removed {
			return state
		}
		st := state
		st.Flights = filtered
		return recomputeTotals(st)

	case ActionRemoveAccommodation:
		filtered, removed := removeAccommodation(state.Accommodations, action.ItemID)
		if !removed {
			return state
		}
		st := state
		st.Accommodations = filtered
		return recomputeTotals(st)

	case ActionRemoveVehicle:
		filtered, removed := removeVehicle(state.Vehicles, action.ItemID)
		if !removed {
			return state
		}
		st := state
		st.Vehicles = filtered
		return recomputeTotals(st)

	case ActionRemoveActivity:
		filtered, removed := removeActivity(state.Activities, action.ItemID)
		if !removed {
			return state
		}
		st := state
		st.Activities = filtered
		return recomputeTotals(st)

	case ActionUpdateFlight:
		return applyUpdateFlight(state, action)

	case ActionSetTravelDates:
		if action.TravelDates == nil {
			return state
		}
		// Уже добавленные позиции против нового периода не перепроверяются:
		// валидация дат совещательная и выполняется при добавлении позиции
		st := state
		st.TravelDates = domain.DateRange{
			Start: domain.DateOnly(action.TravelDates.Start),
			End:   domain.DateOnly(action.TravelDates.End),
		}
		return st

	case ActionSetNotes:
		st := state
		st.Notes = action.Notes
		return st

	case ActionNextStep:
		st := state
		st.CurrentStep = clampStep(st.CurrentStep + 1)
		return markVisited(st, st.CurrentStep)

	case ActionPrevStep:
		st := state
		st.CurrentStep = clampStep(st.CurrentStep - 1)
		return st

	case ActionSetCurrentStep:
		return applySetCurrentStep(state, action.Step)

	case ActionMarkStepVisited:
		if action.Step < 1 || action.Step > domain.TotalSteps {
			return state
		}
		return markVisited(state, action.Step)

	case ActionCalculateTotals:
		return recomputeTotals(state)

	case ActionResetBooking:
		return domain.NewBookingState(now)

	case ActionLoadReservation:
		return applyLoadReservation(state, action.Load)

	default:
		return state
	}
}

// applySetCurrentStep переход на произвольный шаг с гейтингом:
// шаг доступен, если уже был посещён, либо отстоит не более чем на один
// от максимального достигнутого. Отказ - молчаливый no-op, не ошибка
func applySetCurrentStep(state domain.BookingState, target int) domain.BookingState {
	if !state.HasVisited(target) && target > state.MaxVisitedStep+1 {
		return state
	}

	st := state
	st.CurrentStep = clampStep(target)
	return markVisited(st, st.CurrentStep)
}

// applyUpdateFlight пересчитывает цену перелёта под новое число пассажиров
// Цена за пассажира восстанавливается делением текущей цены на текущее
// количество: каждое действие, выставляющее цену, обязано сохранять кратность
func applyUpdateFlight(state domain.BookingState, action Action) domain.BookingState {
	if action.Passengers <= 0 {
		return state
	}

	idx := -1
	for i, f := range state.Flights {
		if f.ID == action.ItemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return state
	}

	flights := copyFlights(state.Flights)
	current := flights[idx]
	if current.Passengers > 0 {
		unitPrice := current.Price / float64(current.Passengers)
		current.Price = unitPrice * float64(action.Passengers)
	}
	current.Passengers = action.Passengers
	flights[idx] = current

	st := state
	st.Flights = flights
	return recomputeTotals(st)
}

// applyLoadReservation массовая гидратация состояния для режима редактирования
// Все шаги помечаются посещёнными, итоги пересчитываются из коллекций
func applyLoadReservation(state domain.BookingState, payload *LoadPayload) domain.BookingState {
	if payload == nil {
		return state
	}

	st := state

	st.Flights = payload.Flights
	if st.Flights == nil {
		st.Flights = []domain.FlightItem{}
	}
	st.Accommodations = payload.Accommodations
	if st.Accommodations == nil {
		st.Accommodations = []domain.AccommodationItem{}
	}
	st.Vehicles = payload.Vehicles
	if st.Vehicles == nil {
		st.Vehicles = []domain.VehicleItem{}
	}
	st.Activities = payload.Activities
	if st.Activities == nil {
		st.Activities = []domain.ActivityItem{}
	}

	if payload.TravelDates != nil {
		st.TravelDates = domain.DateRange{
			Start: domain.DateOnly(payload.TravelDates.Start),
			End:   domain.DateOnly(payload.TravelDates.End),
		}
	}
	if payload.Currency != "" {
		st.Currency = payload.Currency
	}
	st.Notes = payload.Notes

	allSteps := make([]int, domain.TotalSteps)
	for i := range allSteps {
		allSteps[i] = i + 1
	}
	st.VisitedSteps = allSteps
	st.MaxVisitedStep = domain.TotalSteps

	st = recomputeTotals(st)

	// Итог из внешнего сервиса при наличии имеет приоритет над пересчётом
	// (унаследованное поведение, может расходиться с позициями - см. DESIGN.md)
	if payload.TotalPrice != nil && *payload.TotalPrice != 0 {
		st.TotalPrice = *payload.TotalPrice
	}

	return st
}

// markVisited помечает шаг посещённым и поднимает максимальный достигнутый
func markVisited(state domain.BookingState, step int) domain.BookingState {
	st := state
	if !st.HasVisited(step) {
		visited := make([]int, len(st.VisitedSteps), len(st.VisitedSteps)+1)
		copy(visited, st.VisitedSteps)
		st.VisitedSteps = append(visited, step)
	}
	if step > st.MaxVisitedStep {
		st.MaxVisitedStep = step
	}
	return st
}

func clampStep(step int) int {
	if step < 1 {
		return 1
	}
	if step > domain.TotalSteps {
		return domain.TotalSteps
	}
	return step
}

// Копирующие помощники: редьюсер не должен разделять backing array
// с предыдущим состоянием

func copyFlights(items []domain.FlightItem) []domain.FlightItem {
	out := make([]domain.FlightItem, len(items))
	copy(out, items)
	return out
}

func copyAccommodations(items []domain.AccommodationItem) []domain.AccommodationItem {
	out := make([]domain.AccommodationItem, len(items))
	copy(out, items)
	return out
}

func copyVehicles(items []domain.VehicleItem) []domain.VehicleItem {
	out := make([]domain.VehicleItem, len(items))
	copy(out, items)
	return out
}

func copyActivities(items []domain.ActivityItem) []domain.ActivityItem {
	out := make([]domain.ActivityItem, len(items))
	copy(out, items)
	return out
}

func removeFlight(items []domain.FlightItem, id string) ([]domain.FlightItem, bool) {
	out := make([]domain.FlightItem, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ID == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out, removed
}

func removeAccommodation(items []domain.AccommodationItem, id string) ([]domain.AccommodationItem, bool) {
	out := make([]domain.AccommodationItem, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ID == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out, removed
}

func removeVehicle(items []domain.VehicleItem, id string) ([]domain.VehicleItem, bool) {
	out := make([]domain.VehicleItem, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ID == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out, removed
}

func removeActivity(items []domain.ActivityItem, id string) ([]domain.ActivityItem, bool) {
	out := make([]domain.ActivityItem, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ID == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	return out, removed
}
