package add_line_item

import (
	"fmt"
	"time"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
)

// ValidationReport результат проверки дат позиции против периода поездки
// Errors блокируют добавление, Warnings только показываются оператору
type ValidationReport struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// withinWindow проверяет попадание даты в период, обе границы включительно
// Сравнение идёт по календарным дням, время суток игнорируется
func withinWindow(date time.Time, window domain.DateRange) bool {
	d := domain.DateOnly(date)
	start := domain.DateOnly(window.Start)
	end := domain.DateOnly(window.End)
	return !d.Before(start) && !d.After(end)
}

// validateRange проверяет период позиции против периода поездки
//
// Ошибки накапливаются, а не прерывают проверку: при нескольких
// одновременных нарушениях оператор видит их все сразу
//   - начало раньше начала периода поездки
//   - конец позже конца периода поездки
//   - начало позже конца периода поездки (отдельная ошибка, даже если
//     конец позиции сам по себе корректен)
//
// Предупреждения не влияют на Valid:
//   - граница нарушена менее чем на сутки в абсолютном выражении
//   - длительность позиции меньше минимальной
func validateRange(candidateStart, candidateEnd time.Time, window domain.DateRange) ValidationReport {
	report := ValidationReport{}

	start := domain.DateOnly(candidateStart)
	end := domain.DateOnly(candidateEnd)
	winStart := domain.DateOnly(window.Start)
	winEnd := domain.DateOnly(window.End)

	if start.Before(winStart) {
		report.Errors = append(report.Errors, "start date is before the travel window start")
	}
	if end.After(winEnd) {
		report.Errors = append(report.Errors, "end date is after the travel window end")
	}
	if start.After(winEnd) {
		report.Errors = append(report.Errors, "start date is after the travel window end")
	}

	if d := absDuration(candidateStart.Sub(window.Start)); d > 0 && d < domain.BoundaryWarningDays*24*time.Hour {
		report.Warnings = append(report.Warnings, "start date is within one day of the travel window start")
	}
	if d := absDuration(candidateEnd.Sub(window.End)); d > 0 && d < domain.BoundaryWarningDays*24*time.Hour {
		report.Warnings = append(report.Warnings, "end date is within one day of the travel window end")
	}

	if days := inclusiveDaySpan(start, end); days >= 0 && days < domain.MinRentalDays {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("duration is shorter than %d days", domain.MinRentalDays))
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// validateSingleDate частный случай для позиций с одной датой (экскурсии)
func validateSingleDate(date time.Time, window domain.DateRange) ValidationReport {
	report := ValidationReport{}

	if !withinWindow(date, window) {
		d := domain.DateOnly(date)
		if d.Before(domain.DateOnly(window.Start)) {
			report.Errors = append(report.Errors, "date is before the travel window start")
		} else {
			report.Errors = append(report.Errors, "date is after the travel window end")
		}
	}

	if d := absDuration(date.Sub(window.Start)); d > 0 && d < domain.BoundaryWarningDays*24*time.Hour {
		report.Warnings = append(report.Warnings, "date is within one day of the travel window start")
	}
	if d := absDuration(date.Sub(window.End)); d > 0 && d < domain.BoundaryWarningDays*24*time.Hour {
		report.Warnings = append(report.Warnings, "date is within one day of the travel window end")
	}

	report.Valid = len(report.Errors) == 0
	return report
}

// crossCheckFlights проверяет период проживания против окна перелётов:
// та же двусторонняя проверка, но границами служат вылет туда и обратно
// Берутся первый прямой и первый обратный рейс; если пары нет,
// проверять нечего
func crossCheckFlights(checkIn, checkOut time.Time, flights []domain.FlightItem) []string {
	var departure, ret *time.Time
	for i := range flights {
		f := flights[i]
		if f.IsReturn {
			if ret == nil {
				ret = &f.DepartureDate
			}
			continue
		}
		if departure == nil {
			departure = &f.DepartureDate
		}
		if ret == nil && f.ReturnDate != nil {
			ret = f.ReturnDate
		}
	}

	if departure == nil || ret == nil {
		return nil
	}

	window := domain.DateRange{Start: *departure, End: *ret}
	sub := validateRange(checkIn, checkOut, window)

	warnings := make([]string, 0, len(sub.Errors))
	for _, e := range sub.Errors {
		warnings = append(warnings, "flight window: "+e)
	}
	return warnings
}

// validateRequest базовая проверка входных данных запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	if req.ObjectID <= 0 {
		return fmt.Errorf("%w: object id must be positive", ErrInvalidInput)
	}

	switch req.Category {
	case domain.CategoryFlight, domain.CategoryActivity:
		if req.Quantity < domain.MinQuantity {
			return fmt.Errorf("%w: quantity must be at least %d", ErrInvalidInput, domain.MinQuantity)
		}
	case domain.CategoryAccommodation:
		if req.Quantity < domain.MinQuantity {
			return fmt.Errorf("%w: quantity must be at least %d", ErrInvalidInput, domain.MinQuantity)
		}
		if req.EndDate == nil {
			return fmt.Errorf("%w: check-out date is required", ErrInvalidInput)
		}
	case domain.CategoryVehicle:
		if req.EndDate == nil {
			return fmt.Errorf("%w: rental end date is required", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}

	if req.Quantity > domain.MaxQuantity {
		return fmt.Errorf("%w: quantity must not exceed %d", ErrInvalidInput, domain.MaxQuantity)
	}

	if req.EndDate != nil && domain.DateOnly(*req.EndDate).Before(domain.DateOnly(req.StartDate)) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	return nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// inclusiveDaySpan число календарных дней между датами, обе включительно
func inclusiveDaySpan(start, end time.Time) int {
	if end.Before(start) {
		return -1
	}
	return int(end.Sub(start).Hours()/24) + 1
}
