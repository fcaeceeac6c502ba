package add_line_item

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	catalogClient "github.com/m04kA/TourOperator-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard"
)

// UseCase use case добавления позиции в заявку
//
// Цена позиции фиксируется в момент добавления из текущих цен каталога,
// дальше она живёт в состоянии мастера и каталогом не перепроверяется
type UseCase struct {
	wizardService WizardService
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(wizardService WizardService, catalogClient CatalogServiceClient, logger Logger) *UseCase {
	return &UseCase{
		wizardService: wizardService,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute выполняет use case добавления позиции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddLineItem: session=%s, category=%s, object=%d, quantity=%d",
		req.SessionID, req.Category, req.ObjectID, req.Quantity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddLineItem: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее состояние сессии: нужен период поездки для проверки дат
	session, err := uc.wizardService.GetSession(ctx, req.SessionID, req.OperatorID)
	if err != nil {
		return nil, uc.mapWizardError("AddLineItem", req.SessionID, err)
	}

	// 3. Проверка дат против периода поездки
	// Ошибки блокируют добавление, предупреждения уходят в ответ
	report := uc.validateDates(req, &session.State)
	if !report.Valid {
		uc.logger.Warn("AddLineItem: dates rejected for session=%s: %s",
			req.SessionID, strings.Join(report.Errors, "; "))
		return nil, fmt.Errorf("%w: %s", ErrDatesOutOfWindow, strings.Join(report.Errors, "; "))
	}

	// 4. Цена из каталога и сборка действия
	action, price, err := uc.buildAction(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Добавление через редьюсер: итоги пересчитываются внутри
	updated, err := uc.wizardService.ApplyAction(ctx, req.SessionID, req.OperatorID, *action)
	if err != nil {
		return nil, uc.mapWizardError("AddLineItem", req.SessionID, err)
	}

	itemID := actionItemID(action)
	uc.logger.Info("AddLineItem: item=%s added to session=%s, price=%.2f, total=%.2f",
		itemID, req.SessionID, price, updated.State.TotalPrice)

	return &Response{
		Session:  updated,
		ItemID:   itemID,
		Price:    price,
		Warnings: report.Warnings,
	}, nil
}

// validateDates проверяет даты позиции с учётом категории
func (uc *UseCase) validateDates(req *Request, state *domain.BookingState) ValidationReport {
	window := state.TravelDates

	switch req.Category {
	case domain.CategoryFlight:
		if req.EndDate != nil {
			return validateRange(req.StartDate, *req.EndDate, window)
		}
		return validateSingleDate(req.StartDate, window)

	case domain.CategoryAccommodation:
		report := validateRange(req.StartDate, *req.EndDate, window)
		report.Warnings = append(report.Warnings,
			crossCheckFlights(req.StartDate, *req.EndDate, state.Flights)...)
		return report

	case domain.CategoryVehicle:
		return validateRange(req.StartDate, *req.EndDate, window)

	default: // activity
		return validateSingleDate(req.StartDate, window)
	}
}

// buildAction получает объект из каталога, фиксирует цену и собирает
// действие редьюсера для нужной категории
func (uc *UseCase) buildAction(ctx context.Context, req *Request) (*wizard.Action, float64, error) {
	switch req.Category {
	case domain.CategoryFlight:
		flight, err := uc.catalogClient.GetFlight(ctx, req.ObjectID)
		if err != nil {
			return nil, 0, uc.mapCatalogError("flight", req.ObjectID, err)
		}
		price := flight.PricePerPassenger * float64(req.Quantity)
		return &wizard.Action{
			Type: wizard.ActionAddFlight,
			Flight: &domain.FlightItem{
				ID:            uuid.NewString(),
				FlightID:      flight.ID,
				Airline:       flight.Airline,
				Origin:        flight.Origin,
				Destination:   flight.Destination,
				DepartureDate: domain.DateOnly(req.StartDate),
				ReturnDate:    dateOnlyPtr(req.EndDate),
				Passengers:    req.Quantity,
				Price:         price,
				IsReturn:      req.IsReturn,
			},
		}, price, nil

	case domain.CategoryAccommodation:
		acc, err := uc.catalogClient.GetAccommodation(ctx, req.ObjectID)
		if err != nil {
			return nil, 0, uc.mapCatalogError("accommodation", req.ObjectID, err)
		}
		nights := nightCount(req.StartDate, *req.EndDate)
		price := acc.PricePerNight * float64(nights) * float64(req.Quantity)
		return &wizard.Action{
			Type: wizard.ActionAddAccommodation,
			Accommodation: &domain.AccommodationItem{
				ID:              uuid.NewString(),
				AccommodationID: acc.ID,
				Name:            acc.Name,
				Location:        acc.Location,
				CheckIn:         domain.DateOnly(req.StartDate),
				CheckOut:        domain.DateOnly(*req.EndDate),
				Rooms:           req.Quantity,
				Price:           price,
			},
		}, price, nil

	case domain.CategoryVehicle:
		vehicle, err := uc.catalogClient.GetVehicle(ctx, req.ObjectID)
		if err != nil {
			return nil, 0, uc.mapCatalogError("vehicle", req.ObjectID, err)
		}
		days := inclusiveDaySpan(domain.DateOnly(req.StartDate), domain.DateOnly(*req.EndDate))
		price := vehicle.PricePerDay * float64(days)
		return &wizard.Action{
			Type: wizard.ActionAddVehicle,
			Vehicle: &domain.VehicleItem{
				ID:              uuid.NewString(),
				VehicleID:       vehicle.ID,
				Model:           vehicle.Model,
				PickupLocation:  req.PickupLocation,
				DropoffLocation: req.DropoffLocation,
				StartDate:       domain.DateOnly(req.StartDate),
				EndDate:         domain.DateOnly(*req.EndDate),
				Days:            days,
				Price:           price,
			},
		}, price, nil

	default: // activity, категория уже проверена валидацией
		activity, err := uc.catalogClient.GetActivity(ctx, req.ObjectID)
		if err != nil {
			return nil, 0, uc.mapCatalogError("activity", req.ObjectID, err)
		}
		price := activity.PricePerPerson * float64(req.Quantity)
		return &wizard.Action{
			Type: wizard.ActionAddActivity,
			Activity: &domain.ActivityItem{
				ID:            uuid.NewString(),
				ActivityID:    activity.ID,
				Title:         activity.Title,
				Location:      activity.Location,
				Date:          domain.DateOnly(req.StartDate),
				Participants:  req.Quantity,
				DurationHours: activity.DurationHours,
				Price:         price,
			},
		}, price, nil
	}
}

func (uc *UseCase) mapWizardError(op, sessionID string, err error) error {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		uc.logger.Warn("%s: session=%s not found", op, sessionID)
		return ErrSessionNotFound
	case errors.Is(err, wizard.ErrAccessDenied):
		uc.logger.Warn("%s: access denied to session=%s", op, sessionID)
		return ErrAccessDenied
	case errors.Is(err, wizard.ErrSessionBusy):
		uc.logger.Warn("%s: session=%s is busy", op, sessionID)
		return ErrSessionBusy
	case errors.Is(err, wizard.ErrSessionConfirmed):
		uc.logger.Warn("%s: session=%s already confirmed", op, sessionID)
		return ErrSessionConfirmed
	default:
		uc.logger.Error("%s: wizard service failed for session=%s: %v", op, sessionID, err)
		return fmt.Errorf("%w: wizard service: %v", ErrInternal, err)
	}
}

func (uc *UseCase) mapCatalogError(category string, objectID int64, err error) error {
	if errors.Is(err, catalogClient.ErrNotFound) {
		uc.logger.Warn("AddLineItem: %s id=%d not found in catalog", category, objectID)
		return fmt.Errorf("%w: %s id=%d", ErrObjectNotFound, category, objectID)
	}
	uc.logger.Error("AddLineItem: catalog lookup failed for %s id=%d: %v", category, objectID, err)
	return fmt.Errorf("%w: catalog lookup: %v", ErrInternal, err)
}

// nightCount число ночей между заездом и выездом
func nightCount(checkIn, checkOut time.Time) int {
	n := int(domain.DateOnly(checkOut).Sub(domain.DateOnly(checkIn)).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}

func actionItemID(a *wizard.Action) string {
	switch {
	case a.Flight != nil:
		return a.Flight.ID
	case a.Accommodation != nil:
		return a.Accommodation.ID
	case a.Vehicle != nil:
		return a.Vehicle.ID
	case a.Activity != nil:
		return a.Activity.ID
	}
	return ""
}

func dateOnlyPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.DateOnly(*t)
	return &d
}
