package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	sessionRepo "github.com/m04kA/TourOperator-BookingService/internal/infra/storage/session"
)

// Service сервис сессий мастера оформления заявок
// Все переходы состояния проходят через чистый редьюсер Apply;
// чтение и запись снимка выполняются в сериализуемой транзакции,
// поэтому два действия над одной сессией никогда не перемежаются
type Service struct {
	sessions     SessionRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий мастера
func NewService(sessions SessionRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		sessions:     sessions,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// StartSession создает новую сессию с пустым начальным состоянием
func (s *Service) StartSession(ctx context.Context, operatorID int64) (*domain.WizardSession, error) {
	sessionID := uuid.NewString()
	s.logger.Info("StartSession: creating session id=%s for operator=%d", sessionID, operatorID)

	session := &domain.WizardSession{
		ID:         sessionID,
		OperatorID: operatorID,
		State:      domain.NewBookingState(s.timeProvider.Now()),
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		s.logger.Error("StartSession: repository error for operator=%d: %v", operatorID, err)
		return nil, fmt.Errorf("%w: StartSession - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("StartSession: successfully created session id=%s", created.ID)
	return created, nil
}

// GetSession получает сессию по идентификатору
// Оператор видит только собственные сессии
func (s *Service) GetSession(ctx context.Context, sessionID string, operatorID int64) (*domain.WizardSession, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("GetSession: session id=%s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetSession: repository error for session id=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: GetSession - repository error: %v", ErrInternal, err)
	}

	if session.OperatorID != operatorID {
		s.logger.Warn("GetSession: access denied for operator=%d to session id=%s", operatorID, sessionID)
		return nil, ErrAccessDenied
	}

	return session, nil
}

// ApplyAction применяет одно действие мастера к сессии
//
// Чтение снимка, применение редьюсера и запись нового снимка выполняются
// в сериализуемой транзакции: конкурентные действия над одной сессией
// сериализуются на уровне БД
func (s *Service) ApplyAction(ctx context.Context, sessionID string, operatorID int64, action Action) (*domain.WizardSession, error) {
	if !action.Type.IsValid() {
		s.logger.Warn("ApplyAction: invalid action type=%s for session id=%s", action.Type, sessionID)
		return nil, fmt.Errorf("%w: %s", ErrInvalidAction, action.Type)
	}

	s.logger.Info("ApplyAction: applying action=%s to session id=%s by operator=%d",
		action.Type, sessionID, operatorID)

	var result *domain.WizardSession

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		session, err := s.sessions.GetByID(txCtx, sessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: ApplyAction - repository error: %v", ErrInternal, err)
		}

		if session.OperatorID != operatorID {
			return ErrAccessDenied
		}

		// Пока идёт подтверждение, состояние заморожено
		if session.Busy {
			return ErrSessionBusy
		}

		if session.Confirmed {
			return ErrSessionConfirmed
		}

		newState := Apply(session.State, action, s.timeProvider.Now())

		if err := s.sessions.UpdateState(txCtx, sessionID, newState); err != nil {
			return fmt.Errorf("%w: ApplyAction - save state: %v", ErrInternal, err)
		}

		session.State = newState
		result = session
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			s.logger.Warn("ApplyAction: session id=%s not found", sessionID)
		case errors.Is(err, ErrAccessDenied):
			s.logger.Warn("ApplyAction: access denied for operator=%d to session id=%s", operatorID, sessionID)
		case errors.Is(err, ErrSessionBusy):
			s.logger.Warn("ApplyAction: session id=%s is busy, action=%s rejected", sessionID, action.Type)
		case errors.Is(err, ErrSessionConfirmed):
			s.logger.Warn("ApplyAction: session id=%s already confirmed, action=%s rejected", sessionID, action.Type)
		default:
			s.logger.Error("ApplyAction: failed for session id=%s action=%s: %v", sessionID, action.Type, err)
		}
		return nil, err
	}

	s.logger.Info("ApplyAction: action=%s applied to session id=%s, step=%d, total=%.2f",
		action.Type, sessionID, result.State.CurrentStep, result.State.TotalPrice)
	return result, nil
}
