package models

import (
	"time"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
)

// Response модели

// ClientResponse данные клиента в составе сессии
type ClientResponse struct {
	ID           int64    `json:"id,omitempty"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone,omitempty"`
	Nationality  string   `json:"nationality,omitempty"`
	Address      string   `json:"address,omitempty"`
	PartySize    int      `json:"partySize,omitempty"`
	Destinations []string `json:"destinations,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

// DateRangeResponse диапазон дат поездки
type DateRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FlightItemResponse позиция перелёта
type FlightItemResponse struct {
	ID            string     `json:"id"`
	FlightID      int64      `json:"flightId"`
	Airline       string     `json:"airline"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureDate time.Time  `json:"departureDate"`
	ReturnDate    *time.Time `json:"returnDate,omitempty"`
	Passengers    int        `json:"passengers"`
	Price         float64    `json:"price"`
	IsReturn      bool       `json:"isReturn"`
	ReservationID *int64     `json:"reservationId,omitempty"`
}

// AccommodationItemResponse позиция проживания
type AccommodationItemResponse struct {
	ID              string    `json:"id"`
	AccommodationID int64     `json:"accommodationId"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Rooms           int       `json:"rooms"`
	Price           float64   `json:"price"`
	ReservationID   *int64    `json:"reservationId,omitempty"`
}

// VehicleItemResponse позиция аренды транспорта
type VehicleItemResponse struct {
	ID              string    `json:"id"`
	VehicleID       int64     `json:"vehicleId"`
	Model           string    `json:"model"`
	PickupLocation  string    `json:"pickupLocation"`
	DropoffLocation string    `json:"dropoffLocation"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Days            int       `json:"days"`
	Price           float64   `json:"price"`
	ReservationID   *int64    `json:"reservationId,omitempty"`
}

// ActivityItemResponse позиция экскурсии
type ActivityItemResponse struct {
	ID            string    `json:"id"`
	ActivityID    int64     `json:"activityId"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	Date          time.Time `json:"date"`
	Participants  int       `json:"participants"`
	DurationHours float64   `json:"durationHours"`
	Price         float64   `json:"price"`
	ReservationID *int64    `json:"reservationId,omitempty"`
}

// SubtotalsResponse подытоги по категориям
type SubtotalsResponse struct {
	Flights        float64 `json:"flights"`
	Accommodations float64 `json:"accommodations"`
	Vehicles       float64 `json:"vehicles"`
	Activities     float64 `json:"activities"`
}

// BookingStateResponse снимок состояния мастера оформления
type BookingStateResponse struct {
	CurrentStep    int                         `json:"currentStep"`
	VisitedSteps   []int                       `json:"visitedSteps"`
	MaxVisitedStep int                         `json:"maxVisitedStep"`
	Client         *ClientResponse             `json:"client,omitempty"`
	Flights        []FlightItemResponse        `json:"flights"`
	Accommodations []AccommodationItemResponse `json:"accommodations"`
	Vehicles       []VehicleItemResponse       `json:"vehicles"`
	Activities     []ActivityItemResponse      `json:"activities"`
	Subtotals      SubtotalsResponse           `json:"subtotals"`
	TotalPrice     float64                     `json:"totalPrice"`
	TravelDates    DateRangeResponse           `json:"travelDates"`
	Currency       string                      `json:"currency"`
	Notes          *string                     `json:"notes,omitempty"`
}

// SessionResponse сессия мастера оформления
type SessionResponse struct {
	ID            string               `json:"id"`
	OperatorID    int64                `json:"operatorId"`
	State         BookingStateResponse `json:"state"`
	Confirmed     bool                 `json:"confirmed"`
	ReservationID *int64               `json:"reservationId,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// FromDomainState конвертирует доменное состояние в response модель
func FromDomainState(st domain.BookingState) BookingStateResponse {
	resp := BookingStateResponse{
		CurrentStep:    st.CurrentStep,
		VisitedSteps:   append([]int{}, st.VisitedSteps...),
		MaxVisitedStep: st.MaxVisitedStep,
		Flights:        make([]FlightItemResponse, 0, len(st.Flights)),
		Accommodations: make([]AccommodationItemResponse, 0, len(st.Accommodations)),
		Vehicles:       make([]VehicleItemResponse, 0, len(st.Vehicles)),
		Activities:     make([]ActivityItemResponse, 0, len(st.Activities)),
		Subtotals: SubtotalsResponse{
			Flights:        st.Subtotals.Flights,
			Accommodations: st.Subtotals.Accommodations,
			Vehicles:       st.Subtotals.Vehicles,
			Activities:     st.Subtotals.Activities,
		},
		TotalPrice: st.TotalPrice,
		TravelDates: DateRangeResponse{
			Start: st.TravelDates.Start.Format(domain.DateFormat),
			End:   st.TravelDates.End.Format(domain.DateFormat),
		},
		Currency: st.Currency,
		Notes:    st.Notes,
	}

	if st.Client != nil {
		resp.Client = &ClientResponse{
			ID:           st.Client.ID,
			Name:         st.Client.Name,
			Email:        st.Client.Email,
			Phone:        st.Client.Phone,
			Nationality:  st.Client.Nationality,
			Address:      st.Client.Address,
			PartySize:    st.Client.PartySize,
			Destinations: st.Client.Destinations,
			Notes:        st.Client.Notes,
		}
	}

	for _, f := range st.Flights {
		resp.Flights = append(resp.Flights, FlightItemResponse{
			ID:            f.ID,
			FlightID:      f.FlightID,
			Airline:       f.Airline,
			Origin:        f.Origin,
			Destination:   f.Destination,
			DepartureDate: f.DepartureDate,
			ReturnDate:    f.ReturnDate,
			Passengers:    f.Passengers,
			Price:         f.Price,
			IsReturn:      f.IsReturn,
			ReservationID: f.ReservationID,
		})
	}

	for _, a := range st.Accommodations {
		resp.Accommodations = append(resp.Accommodations, AccommodationItemResponse{
			ID:              a.ID,
			AccommodationID: a.AccommodationID,
			Name:            a.Name,
			Location:        a.Location,
			CheckIn:         a.CheckIn,
			CheckOut:        a.CheckOut,
			Rooms:           a.Rooms,
			Price:           a.Price,
			ReservationID:   a.ReservationID,
		})
	}

	for _, v := range st.Vehicles {
		resp.Vehicles = append(resp.Vehicles, VehicleItemResponse{
			ID:              v.ID,
			VehicleID:       v.VehicleID,
			Model:           v.Model,
			PickupLocation:  v.PickupLocation,
			DropoffLocation: v.DropoffLocation,
			StartDate:       v.StartDate,
			EndDate:         v.EndDate,
			Days:            v.Days,
			Price:           v.Price,
			ReservationID:   v.ReservationID,
		})
	}

	for _, act := range st.Activities {
		resp.Activities = append(resp.Activities, ActivityItemResponse{
			ID:            act.ID,
			ActivityID:    act.ActivityID,
			Title:         act.Title,
			Location:      act.Location,
			Date:          act.Date,
			Participants:  act.Participants,
			DurationHours: act.DurationHours,
			Price:         act.Price,
			ReservationID: act.ReservationID,
		})
	}

	return resp
}

// FromDomainSession конвертирует доменную сессию в response модель
func FromDomainSession(sess *domain.WizardSession) SessionResponse {
	return SessionResponse{
		ID:            sess.ID,
		OperatorID:    sess.OperatorID,
		State:         FromDomainState(sess.State),
		Confirmed:     sess.Confirmed,
		ReservationID: sess.ReservationID,
		CreatedAt:     sess.CreatedAt,
		UpdatedAt:     sess.UpdatedAt,
	}
}
