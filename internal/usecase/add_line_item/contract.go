package add_line_item

import (
	"context"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	"github.com/m04kA/TourOperator-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard"
)

// WizardService интерфейс сервиса сессий мастера
type WizardService interface {
	GetSession(ctx context.Context, sessionID string, operatorID int64) (*domain.WizardSession, error)
	ApplyAction(ctx context.Context, sessionID string, operatorID int64, action wizard.Action) (*domain.WizardSession, error)
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetFlight(ctx context.Context, id int64) (*catalogservice.Flight, error)
	GetAccommodation(ctx context.Context, id int64) (*catalogservice.Accommodation, error)
	GetVehicle(ctx context.Context, id int64) (*catalogservice.Vehicle, error)
	GetActivity(ctx context.Context, id int64) (*catalogservice.Activity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
