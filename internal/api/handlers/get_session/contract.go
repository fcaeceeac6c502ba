package get_session

import (
	"context"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
)

type WizardService interface {
	GetSession(ctx context.Context, sessionID string, operatorID int64) (*domain.WizardSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
