package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
)

func TestRecomputeTotals(t *testing.T) {
	tests := []struct {
		name          string
		state         domain.BookingState
		wantSubtotals domain.Subtotals
		wantTotal     float64
	}{
		{
			name:      "пустые коллекции",
			state:     domain.BookingState{},
			wantTotal: 0,
		},
		{
			name: "все категории",
			state: domain.BookingState{
				Flights:        []domain.FlightItem{{Price: 100}, {Price: 150}},
				Accommodations: []domain.AccommodationItem{{Price: 500}},
				Vehicles:       []domain.VehicleItem{{Price: 90}},
				Activities:     []domain.ActivityItem{{Price: 40}, {Price: 60}},
			},
			wantSubtotals: domain.Subtotals{
				Flights:        250,
				Accommodations: 500,
				Vehicles:       90,
				Activities:     100,
			},
			wantTotal: 940,
		},
		{
			name: "позиции без цены считаются нулевыми",
			state: domain.BookingState{
				Flights:    []domain.FlightItem{{ID: "f1"}, {Price: 200}},
				Activities: []domain.ActivityItem{{ID: "a1"}},
			},
			wantSubtotals: domain.Subtotals{Flights: 200},
			wantTotal:     200,
		},
		{
			name: "устаревший кеш итога перезаписывается",
			state: domain.BookingState{
				Flights:    []domain.FlightItem{{Price: 100}},
				TotalPrice: 9999,
				Subtotals:  domain.Subtotals{Flights: 9999},
			},
			wantSubtotals: domain.Subtotals{Flights: 100},
			wantTotal:     100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recomputeTotals(tt.state)
			assert.Equal(t, tt.wantSubtotals, got.Subtotals)
			assert.Equal(t, tt.wantTotal, got.TotalPrice)
			assert.Equal(t, got.Subtotals.Sum(), got.TotalPrice)
		})
	}
}
