package apply_action

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard"
)

var errNotesTooLong = errors.New("notes exceed the maximum length")

// ClientPayload данные клиента в действии SET_CLIENT
type ClientPayload struct {
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

// DateRangePayload период поездки в действии SET_TRAVEL_DATES
type DateRangePayload struct {
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`   // YYYY-MM-DD
}

// ApplyActionRequest HTTP request model
// Заполняются только поля, относящиеся к типу действия
type ApplyActionRequest struct {
	Type string `json:"type"`

	Client      *ClientPayload    `json:"client,omitempty"`      // SET_CLIENT
	ItemID      string            `json:"itemId,omitempty"`      // REMOVE_*, UPDATE_FLIGHT
	Passengers  int               `json:"passengers,omitempty"`  // UPDATE_FLIGHT
	TravelDates *DateRangePayload `json:"travelDates,omitempty"` // SET_TRAVEL_DATES
	Notes       *string           `json:"notes,omitempty"`       // SET_NOTES
	Step        int               `json:"step,omitempty"`        // SET_CURRENT_STEP, MARK_STEP_VISITED
}

// ToAction конвертирует HTTP запрос в действие редьюсера
func (r *ApplyActionRequest) ToAction() (wizard.Action, error) {
	if err := validateNotes(r.Notes); err != nil {
		return wizard.Action{}, err
	}
	if r.Client != nil {
		if err := validateNotes(r.Client.Notes); err != nil {
			return wizard.Action{}, err
		}
	}

	action := wizard.Action{
		Type:       wizard.ActionType(r.Type),
		ItemID:     r.ItemID,
		Passengers: r.Passengers,
		Notes:      r.Notes,
		Step:       r.Step,
	}

	if r.Client != nil {
		action.Client = &domain.BookingClient{
			ID:           r.Client.ID,
			Name:         r.Client.Name,
			Email:        r.Client.Email,
			Phone:        r.Client.Phone,
			Nationality:  r.Client.Nationality,
			Address:      r.Client.Address,
			PartySize:    r.Client.PartySize,
			Destinations: r.Client.Destinations,
			Notes:        r.Client.Notes,
		}
	}

	if r.TravelDates != nil {
		start, err := time.Parse(domain.DateFormat, r.TravelDates.Start)
		if err != nil {
			return wizard.Action{}, fmt.Errorf("invalid start date: %w", err)
		}
		end, err := time.Parse(domain.DateFormat, r.TravelDates.End)
		if err != nil {
			return wizard.Action{}, fmt.Errorf("invalid end date: %w", err)
		}
		action.TravelDates = &domain.DateRange{Start: start, End: end}
	}

	return action, nil
}

// Длина примечаний считается в символах, не в байтах
func validateNotes(notes *string) error {
	if notes != nil && utf8.RuneCountInString(*notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: limit is %d characters", errNotesTooLong, domain.MaxNotesLength)
	}
	return nil
}
