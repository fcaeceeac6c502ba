package load_reservation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOperator-BookingService/internal/integrations/reservationservice"
	"github.com/m04kA/TourOperator-BookingService/pkg/ptr"
)

func baseReservation() *reservationservice.Reservation {
	return &reservationservice.Reservation{
		ID:        501,
		ClientID:  10,
		Status:    "confirmed",
		Currency:  "EUR",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-07",
	}
}

func TestBuildLoadPayload_FullReservation(t *testing.T) {
	r := baseReservation()
	r.TotalAmount = ptr.Ptr(1200.0)
	r.Notes = ptr.Ptr("vip client")
	r.Flights = json.RawMessage(`[
		{"objectId": 3, "name": "TAP", "location": "Lisbon", "startDate": "2024-06-01", "quantity": 2, "price": 400},
		{"objectId": 4, "name": "TAP", "location": "Moscow", "startDate": "2024-06-07", "quantity": 2, "price": 400, "isReturn": true}
	]`)
	r.Accommodations = json.RawMessage(`[
		{"objectId": 7, "name": "Hotel Avenida", "location": "Lisbon", "startDate": "2024-06-01", "endDate": "2024-06-06", "quantity": 1, "price": 500}
	]`)

	payload, warnings := buildLoadPayload(r)

	assert.Empty(t, warnings)
	assert.Equal(t, "EUR", payload.Currency)
	require.NotNil(t, payload.TotalPrice)
	assert.Equal(t, 1200.0, *payload.TotalPrice)
	require.NotNil(t, payload.Notes)
	assert.Equal(t, "vip client", *payload.Notes)

	require.NotNil(t, payload.TravelDates)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), payload.TravelDates.Start)
	assert.Equal(t, time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), payload.TravelDates.End)

	require.Len(t, payload.Flights, 2)
	outbound := payload.Flights[0]
	assert.NotEmpty(t, outbound.ID)
	assert.Equal(t, int64(3), outbound.FlightID)
	assert.Equal(t, "TAP", outbound.Airline)
	assert.Equal(t, "Lisbon", outbound.Destination)
	assert.Equal(t, 2, outbound.Passengers)
	assert.False(t, outbound.IsReturn)
	require.NotNil(t, outbound.ReservationID)
	assert.Equal(t, int64(501), *outbound.ReservationID)
	assert.True(t, payload.Flights[1].IsReturn)

	require.Len(t, payload.Accommodations, 1)
	acc := payload.Accommodations[0]
	assert.Equal(t, int64(7), acc.AccommodationID)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), acc.CheckIn)
	assert.Equal(t, time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC), acc.CheckOut)
	assert.Equal(t, 1, acc.Rooms)
}

func TestBuildLoadPayload_MalformedCollection(t *testing.T) {
	r := baseReservation()
	r.Flights = json.RawMessage(`"not-an-array"`)
	r.Accommodations = json.RawMessage(`[
		{"objectId": 7, "name": "Hotel Avenida", "startDate": "2024-06-01", "endDate": "2024-06-06", "quantity": 1, "price": 500}
	]`)

	payload, warnings := buildLoadPayload(r)

	require.Len(t, warnings, 1, "кривое поле даёт ровно одно предупреждение")
	assert.Equal(t, `field "flights" is not a valid collection, treated as empty`, warnings[0])
	assert.Empty(t, payload.Flights, "кривая коллекция сводится к пустой")
	require.Len(t, payload.Accommodations, 1, "остальные коллекции разбираются независимо")
}

func TestBuildLoadPayload_NullAndMissingCollections(t *testing.T) {
	r := baseReservation()
	r.Flights = json.RawMessage(`null`)
	// Accommodations отсутствует вовсе

	payload, warnings := buildLoadPayload(r)

	assert.Empty(t, warnings, "null и отсутствие поля предупреждений не дают")
	assert.Empty(t, payload.Flights)
	assert.Empty(t, payload.Accommodations)
}

func TestBuildLoadPayload_UnparsableTravelDates(t *testing.T) {
	r := baseReservation()
	r.StartDate = "when we feel like it"

	payload, warnings := buildLoadPayload(r)

	assert.Nil(t, payload.TravelDates)
	require.Len(t, warnings, 1)
	assert.Equal(t, "travel dates are unparsable, keeping current window", warnings[0])
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{"формат даты", "2024-06-03", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), true},
		{"RFC3339 усекается до даты", "2024-06-03T15:04:05Z", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), true},
		{"пустая строка", "", time.Time{}, false},
		{"мусор", "third of june", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
