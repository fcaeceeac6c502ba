package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	sessionRepo "github.com/m04kA/TourOperator-BookingService/internal/infra/storage/session"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type fakeSessionRepo struct {
	sessions map[string]*domain.WizardSession
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*domain.WizardSession{}}
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *domain.WizardSession) (*domain.WizardSession, error) {
	stored := *s
	r.sessions[s.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.WizardSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSessionRepo) UpdateState(ctx context.Context, id string, state domain.BookingState) error {
	s, ok := r.sessions[id]
	if !ok {
		return sessionRepo.ErrSessionNotFound
	}
	s.State = state
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo *fakeSessionRepo) *Service {
	svc := NewService(repo, fakeTxManager{}, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: testNow}
	return svc
}

func TestService_StartSession(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo)

	session, err := svc.StartSession(context.Background(), 42)

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, int64(42), session.OperatorID)
	assert.Equal(t, 1, session.State.CurrentStep)
	assert.Equal(t, []int{1}, session.State.VisitedSteps)
	assert.False(t, session.Confirmed)
}

func TestService_GetSession_AccessDenied(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo)

	session, err := svc.StartSession(context.Background(), 42)
	require.NoError(t, err)

	_, err = svc.GetSession(context.Background(), session.ID, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetSession_NotFound(t *testing.T) {
	svc := newTestService(newFakeSessionRepo())

	_, err := svc.GetSession(context.Background(), "missing", 42)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_ApplyAction_PersistsNewState(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo)

	session, err := svc.StartSession(context.Background(), 42)
	require.NoError(t, err)

	updated, err := svc.ApplyAction(context.Background(), session.ID, 42, Action{Type: ActionNextStep})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.State.CurrentStep)

	// Состояние реально сохранено, а не только возвращено
	reloaded, err := svc.GetSession(context.Background(), session.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.State.CurrentStep)
}

func TestService_ApplyAction_InvalidType(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo)

	session, err := svc.StartSession(context.Background(), 42)
	require.NoError(t, err)

	_, err = svc.ApplyAction(context.Background(), session.ID, 42, Action{Type: ActionType("NOPE")})
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestService_ApplyAction_BusySession(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo)

	session, err := svc.StartSession(context.Background(), 42)
	require.NoError(t, err)
	repo.sessions[session.ID].Busy = true

	_, err = svc.ApplyAction(context.Background(), session.ID, 42, Action{Type: ActionNextStep})
	assert.ErrorIs(t, err, ErrSessionBusy)
}

func TestService_ApplyAction_ConfirmedSession(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestService(repo)

	session, err := svc.StartSession(context.Background(), 42)
	require.NoError(t, err)
	repo.sessions[session.ID].Confirmed = true

	_, err = svc.ApplyAction(context.Background(), session.ID, 42, Action{Type: ActionNextStep})
	assert.ErrorIs(t, err, ErrSessionConfirmed)
}
