package apply_action

import (
	"context"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	"github.com/m04kA/TourOperator-BookingService/internal/service/wizard"
)

type WizardService interface {
	ApplyAction(ctx context.Context, sessionID string, operatorID int64, action wizard.Action) (*domain.WizardSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
