package domain

import "time"

// Заголовки дней плана поездки
const (
	DayTitleArrival   = "Arrival"
	DayTitleDeparture = "Departure"
	DayTitleDiscovery = "Day %d — Discovery"
)

// MealFlags признаки включённого питания на день
type MealFlags struct {
	Breakfast bool
	Lunch     bool
	Dinner    bool
}

// PlanSlot один пункт дневного расписания
type PlanSlot struct {
	TimeLabel     string // метка времени ("09:00" либо "per flight schedule")
	Description   string
	DurationHours float64
	Included      bool // входит ли в стоимость тура
}

// PlanDay один день плана поездки
// Производная структура: никогда не мутируется, пересоздаётся целиком
type PlanDay struct {
	Number        int
	Date          time.Time
	Location      string
	Title         string
	Slots         []PlanSlot
	Accommodation *string
	Meals         MealFlags
	Transport     *string
	Note          *string
}

// TravelPlan план поездки, построенный из подтверждённой заявки
type TravelPlan struct {
	ID            *int64
	ReservationID int64
	Title         string
	Destination   string
	Days          []PlanDay
}

// Duration возвращает число дней в плане
func (p *TravelPlan) Duration() int {
	return len(p.Days)
}

// WizardSession сессия мастера оформления заявки
// Busy выставляется на время подтверждения: пока флаг взведён,
// мутирующие действия не принимаются
type WizardSession struct {
	ID            string
	OperatorID    int64
	State         BookingState
	Busy          bool
	Confirmed     bool
	ReservationID *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
