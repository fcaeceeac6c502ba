package apply_action

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard"
	"github.com/m04kA/TourOperator-BookingService/pkg/ptr"
)

func TestToAction_TravelDates(t *testing.T) {
	req := ApplyActionRequest{
		Type:        string(wizard.ActionSetTravelDates),
		TravelDates: &DateRangePayload{Start: "2024-06-01", End: "2024-06-07"},
	}

	action, err := req.ToAction()

	require.NoError(t, err)
	require.NotNil(t, action.TravelDates)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), action.TravelDates.Start)
	assert.Equal(t, time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), action.TravelDates.End)
}

func TestToAction_InvalidDates(t *testing.T) {
	req := ApplyActionRequest{
		Type:        string(wizard.ActionSetTravelDates),
		TravelDates: &DateRangePayload{Start: "01.06.2024", End: "2024-06-07"},
	}

	_, err := req.ToAction()

	assert.Error(t, err)
}

func TestToAction_NotesLength(t *testing.T) {
	atLimit := strings.Repeat("я", domain.MaxNotesLength)
	overLimit := atLimit + "я"

	tests := []struct {
		name    string
		req     ApplyActionRequest
		wantErr bool
	}{
		{
			name:    "примечания на границе допустимой длины",
			req:     ApplyActionRequest{Type: string(wizard.ActionSetNotes), Notes: ptr.Ptr(atLimit)},
			wantErr: false,
		},
		{
			name:    "примечания длиннее допустимого",
			req:     ApplyActionRequest{Type: string(wizard.ActionSetNotes), Notes: ptr.Ptr(overLimit)},
			wantErr: true,
		},
		{
			name: "примечания клиента длиннее допустимого",
			req: ApplyActionRequest{
				Type:   string(wizard.ActionSetClient),
				Client: &ClientPayload{Name: "Ivan Petrov", Email: "ivan@example.com", Notes: ptr.Ptr(overLimit)},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToAction()
			if tt.wantErr {
				assert.ErrorIs(t, err, errNotesTooLong)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
