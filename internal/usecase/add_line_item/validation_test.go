package add_line_item

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
)

func date(day int) time.Time {
	return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC)
}

func juneWindow() domain.DateRange {
	return domain.DateRange{Start: date(1), End: date(7)}
}

func TestWithinWindow(t *testing.T) {
	window := juneWindow()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"середина периода", date(4), true},
		{"первый день", date(1), true},
		{"последний день", date(7), true},
		{"день до начала", time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), false},
		{"день после конца", date(8), false},
		{"последний день, позднее время суток", time.Date(2024, 6, 7, 23, 30, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withinWindow(tt.date, window))
		})
	}
}

func TestValidateRange_EndBeyondWindow(t *testing.T) {
	// Конец позиции выходит за период поездки: ровно одна ошибка
	report := validateRange(date(3), date(10), juneWindow())

	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "end date is after the travel window end", report.Errors[0])
	assert.Empty(t, report.Warnings)
}

func TestValidateRange_AccumulatesErrors(t *testing.T) {
	// Начало позже конца периода: нарушены сразу два правила
	report := validateRange(date(9), date(10), juneWindow())

	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors, "end date is after the travel window end")
	assert.Contains(t, report.Errors, "start date is after the travel window end")
}

func TestValidateRange_ValidInside(t *testing.T) {
	report := validateRange(date(2), date(6), juneWindow())

	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
}

func TestValidateRange_BoundaryWarning(t *testing.T) {
	// Начало на 6 часов позже начала периода: календарный день тот же,
	// ошибки нет, но предупреждение о близости к границе есть
	start := time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)

	report := validateRange(start, date(6), juneWindow())

	assert.True(t, report.Valid)
	assert.Contains(t, report.Warnings, "start date is within one day of the travel window start")
}

func TestValidateRange_ShortDurationWarning(t *testing.T) {
	report := validateRange(date(3), date(3), juneWindow())

	assert.True(t, report.Valid)
	assert.Contains(t, report.Warnings, "duration is shorter than 2 days")
}

func TestValidateRange_ExactWindowNoWarnings(t *testing.T) {
	report := validateRange(date(1), date(7), juneWindow())

	assert.True(t, report.Valid)
	assert.Empty(t, report.Warnings, "точное совпадение границ предупреждений не даёт")
}

func TestValidateSingleDate(t *testing.T) {
	window := juneWindow()

	tests := []struct {
		name      string
		date      time.Time
		valid     bool
		wantError string
	}{
		{"внутри периода", date(4), true, ""},
		{"до начала", time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), false, "date is before the travel window start"},
		{"после конца", date(15), false, "date is after the travel window end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := validateSingleDate(tt.date, window)
			assert.Equal(t, tt.valid, report.Valid)
			if tt.wantError != "" {
				require.Len(t, report.Errors, 1)
				assert.Equal(t, tt.wantError, report.Errors[0])
			}
		})
	}
}

func TestCrossCheckFlights(t *testing.T) {
	flights := []domain.FlightItem{
		{ID: "f1", DepartureDate: date(1)},
		{ID: "f2", DepartureDate: date(7), IsReturn: true},
	}

	t.Run("проживание внутри окна перелётов", func(t *testing.T) {
		warnings := crossCheckFlights(date(2), date(6), flights)
		assert.Empty(t, warnings)
	})

	t.Run("выезд позже обратного рейса даёт предупреждение", func(t *testing.T) {
		warnings := crossCheckFlights(date(2), date(9), flights)
		require.Len(t, warnings, 1)
		assert.Equal(t, "flight window: end date is after the travel window end", warnings[0])
	})

	t.Run("без обратного рейса проверки нет", func(t *testing.T) {
		warnings := crossCheckFlights(date(2), date(9), flights[:1])
		assert.Nil(t, warnings)
	})

	t.Run("обратная дата прямого рейса заменяет обратный рейс", func(t *testing.T) {
		ret := date(5)
		oneFlight := []domain.FlightItem{{ID: "f1", DepartureDate: date(1), ReturnDate: &ret}}

		warnings := crossCheckFlights(date(2), date(6), oneFlight)
		require.Len(t, warnings, 1)
		assert.Equal(t, "flight window: end date is after the travel window end", warnings[0])
	})
}

func TestValidateRequest(t *testing.T) {
	end := date(5)

	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{
			name:    "корректный перелёт",
			req:     Request{SessionID: "s1", Category: domain.CategoryFlight, ObjectID: 1, StartDate: date(1), Quantity: 2},
			wantErr: false,
		},
		{
			name:    "пустой идентификатор сессии",
			req:     Request{Category: domain.CategoryFlight, ObjectID: 1, StartDate: date(1), Quantity: 2},
			wantErr: true,
		},
		{
			name:    "неположительный идентификатор объекта",
			req:     Request{SessionID: "s1", Category: domain.CategoryFlight, ObjectID: 0, StartDate: date(1), Quantity: 2},
			wantErr: true,
		},
		{
			name:    "перелёт без количества пассажиров",
			req:     Request{SessionID: "s1", Category: domain.CategoryFlight, ObjectID: 1, StartDate: date(1)},
			wantErr: true,
		},
		{
			name:    "количество сверх допустимого",
			req:     Request{SessionID: "s1", Category: domain.CategoryFlight, ObjectID: 1, StartDate: date(1), Quantity: domain.MaxQuantity + 1},
			wantErr: true,
		},
		{
			name:    "количество на верхней границе",
			req:     Request{SessionID: "s1", Category: domain.CategoryActivity, ObjectID: 1, StartDate: date(1), Quantity: domain.MaxQuantity},
			wantErr: false,
		},
		{
			name:    "проживание без даты выезда",
			req:     Request{SessionID: "s1", Category: domain.CategoryAccommodation, ObjectID: 1, StartDate: date(1), Quantity: 1},
			wantErr: true,
		},
		{
			name:    "аренда без даты возврата",
			req:     Request{SessionID: "s1", Category: domain.CategoryVehicle, ObjectID: 1, StartDate: date(1)},
			wantErr: true,
		},
		{
			name:    "неизвестная категория",
			req:     Request{SessionID: "s1", Category: "cruise", ObjectID: 1, StartDate: date(1), Quantity: 1},
			wantErr: true,
		},
		{
			name:    "конец раньше начала",
			req:     Request{SessionID: "s1", Category: domain.CategoryVehicle, ObjectID: 1, StartDate: date(6), EndDate: &end},
			wantErr: true,
		},
		{
			name:    "корректная аренда",
			req:     Request{SessionID: "s1", Category: domain.CategoryVehicle, ObjectID: 1, StartDate: date(2), EndDate: &end},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(&tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInclusiveDaySpan(t *testing.T) {
	assert.Equal(t, 7, inclusiveDaySpan(date(1), date(7)))
	assert.Equal(t, 1, inclusiveDaySpan(date(3), date(3)))
	assert.Equal(t, -1, inclusiveDaySpan(date(5), date(3)))
}
