package wizard

import "github.com/m04kA/TourOperator-BookingService/internal/domain"

// ActionType тип действия мастера оформления заявки
type ActionType string

// Фиксированный набор действий редьюсера
const (
	ActionSetClient           ActionType = "SET_CLIENT"
	ActionAddFlight           ActionType = "ADD_FLIGHT"
	ActionAddAccommodation    ActionType = "ADD_ACCOMMODATION"
	ActionAddVehicle          ActionType = "ADD_VEHICLE"
	ActionAddActivity         ActionType = "ADD_ACTIVITY"
	ActionRemoveFlight        ActionType = "REMOVE_FLIGHT"
	ActionRemoveAccommodation ActionType = "REMOVE_ACCOMMODATION"
	ActionRemoveVehicle       ActionType = "REMOVE_VEHICLE"
	ActionRemoveActivity      ActionType = "REMOVE_ACTIVITY"
	ActionUpdateFlight        ActionType = "UPDATE_FLIGHT"
	ActionSetTravelDates      ActionType = "SET_TRAVEL_DATES"
	ActionSetNotes            ActionType = "SET_NOTES"
	ActionNextStep            ActionType = "NEXT_STEP"
	ActionPrevStep            ActionType = "PREV_STEP"
	ActionSetCurrentStep      ActionType = "SET_CURRENT_STEP"
	ActionMarkStepVisited     ActionType = "MARK_STEP_VISITED"
	ActionCalculateTotals     ActionType = "CALCULATE_TOTALS"
	ActionResetBooking        ActionType = "RESET_BOOKING"
	ActionLoadReservation     ActionType = "LOAD_RESERVATION"
)

var knownActionTypes = map[ActionType]struct{}{
	ActionSetClient:           {},
	ActionAddFlight:           {},
	ActionAddAccommodation:    {},
	ActionAddVehicle:          {},
	ActionAddActivity:         {},
	ActionRemoveFlight:        {},
	ActionRemoveAccommodation: {},
	ActionRemoveVehicle:       {},
	ActionRemoveActivity:      {},
	ActionUpdateFlight:        {},
	ActionSetTravelDates:      {},
	ActionSetNotes:            {},
	ActionNextStep:            {},
	ActionPrevStep:            {},
	ActionSetCurrentStep:      {},
	ActionMarkStepVisited:     {},
	ActionCalculateTotals:     {},
	ActionResetBooking:        {},
	ActionLoadReservation:     {},
}

// IsValid возвращает true, если тип действия известен редьюсеру
func (t ActionType) IsValid() bool {
	_, ok := knownActionTypes[t]
	return ok
}

// LoadPayload данные для массовой гидратации состояния (режим редактирования)
// Коллекции уже приведены к типизированному виду валидирующим конструктором,
// некорректные поля внешнего ответа к этому моменту заменены пустыми срезами
type LoadPayload struct {
	Flights        []domain.FlightItem
	Accommodations []domain.AccommodationItem
	Vehicles       []domain.VehicleItem
	Activities     []domain.ActivityItem
	TravelDates    *domain.DateRange
	Currency       string
	Notes          *string

	// Итог из внешнего сервиса: при наличии имеет приоритет над пересчитанной
	// суммой (поведение унаследовано, см. DESIGN.md)
	TotalPrice *float64
}

// Action одно действие мастера; заполняются только поля, относящиеся к типу
type Action struct {
	Type ActionType

	Client        *domain.BookingClient
	Flight        *domain.FlightItem
	Accommodation *domain.AccommodationItem
	Vehicle       *domain.VehicleItem
	Activity      *domain.ActivityItem

	ItemID     string // для REMOVE_* и UPDATE_FLIGHT
	Passengers int    // для UPDATE_FLIGHT

	TravelDates *domain.DateRange
	Notes       *string
	Step        int // для SET_CURRENT_STEP и MARK_STEP_VISITED

	Load *LoadPayload
}
