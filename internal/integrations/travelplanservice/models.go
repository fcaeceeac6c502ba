package travelplanservice

import "encoding/json"

// envelope унифицированный конверт ответа внешних сервисов
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *string         `json:"error,omitempty"`
}

// PlanSlotPayload пункт дневного расписания
type PlanSlotPayload struct {
	TimeLabel     string  `json:"timeLabel"`
	Description   string  `json:"description"`
	DurationHours float64 `json:"durationHours"`
	Included      bool    `json:"included"`
}

// MealsPayload признаки включённого питания
type MealsPayload struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
}

// PlanDayPayload один день плана поездки
type PlanDayPayload struct {
	Number        int               `json:"number"`
	Date          string            `json:"date"` // YYYY-MM-DD
	Location      string            `json:"location"`
	Title         string            `json:"title"`
	Slots         []PlanSlotPayload `json:"slots"`
	Accommodation *string           `json:"accommodation,omitempty"`
	Meals         MealsPayload      `json:"meals"`
	Transport     *string           `json:"transport,omitempty"`
	Note          *string           `json:"note,omitempty"`
}

// TravelPlanPayload план поездки целиком
type TravelPlanPayload struct {
	ID            *int64           `json:"id,omitempty"`
	ReservationID int64            `json:"reservationId"`
	Title         string           `json:"title"`
	Destination   string           `json:"destination"`
	Days          []PlanDayPayload `json:"days"`
}

// CreatedPlan ответ сервиса на создание плана
type CreatedPlan struct {
	ID int64 `json:"id"`
}
