package models

import (
	"github.com/m04kA/TourOperator-BookingService/internal/domain"
)

// PlanSlotResponse пункт дневного расписания
type PlanSlotResponse struct {
	TimeLabel     string  `json:"timeLabel"`
	Description   string  `json:"description"`
	DurationHours float64 `json:"durationHours,omitempty"`
	Included      bool    `json:"included"`
}

// MealsResponse признаки включённого питания
type MealsResponse struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
}

// PlanDayResponse один день плана поездки
type PlanDayResponse struct {
	Number        int                `json:"number"`
	Date          string             `json:"date"` // YYYY-MM-DD
	Location      string             `json:"location"`
	Title         string             `json:"title"`
	Slots         []PlanSlotResponse `json:"slots"`
	Accommodation *string            `json:"accommodation,omitempty"`
	Meals         MealsResponse      `json:"meals"`
	Transport     *string            `json:"transport,omitempty"`
	Note          *string            `json:"note,omitempty"`
}

// TravelPlanResponse план поездки целиком
type TravelPlanResponse struct {
	ID            *int64            `json:"id,omitempty"`
	ReservationID int64             `json:"reservationId"`
	Title         string            `json:"title"`
	Destination   string            `json:"destination"`
	Days          []PlanDayResponse `json:"days"`
}

// FromDomainPlan конвертирует доменный план в response модель
func FromDomainPlan(p *domain.TravelPlan) TravelPlanResponse {
	resp := TravelPlanResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Title:         p.Title,
		Destination:   p.Destination,
		Days:          make([]PlanDayResponse, 0, len(p.Days)),
	}

	for _, d := range p.Days {
		day := PlanDayResponse{
			Number:        d.Number,
			Date:          d.Date.Format(domain.DateFormat),
			Location:      d.Location,
			Title:         d.Title,
			Slots:         make([]PlanSlotResponse, 0, len(d.Slots)),
			Accommodation: d.Accommodation,
			Meals: MealsResponse{
				Breakfast: d.Meals.Breakfast,
				Lunch:     d.Meals.Lunch,
				Dinner:    d.Meals.Dinner,
			},
			Transport: d.Transport,
			Note:      d.Note,
		}
		for _, sl := range d.Slots {
			day.Slots = append(day.Slots, PlanSlotResponse{
				TimeLabel:     sl.TimeLabel,
				Description:   sl.Description,
				DurationHours: sl.DurationHours,
				Included:      sl.Included,
			})
		}
		resp.Days = append(resp.Days, day)
	}

	return resp
}
