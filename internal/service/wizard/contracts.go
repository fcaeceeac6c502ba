package wizard

import (
	"context"
	"time"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
)

// SessionRepository интерфейс репозитория сессий мастера
type SessionRepository interface {
	Create(ctx context.Context, s *domain.WizardSession) (*domain.WizardSession, error)
	GetByID(ctx context.Context, id string) (*domain.WizardSession, error)
	UpdateState(ctx context.Context, id string, state domain.BookingState) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
