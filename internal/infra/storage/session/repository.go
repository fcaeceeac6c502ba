package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	"github.com/m04kA/TourOperator-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TourOperator-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий сессий мастера оформления заявок
// Состояние мастера хранится целиком как JSONB-снимок в колонке state
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию мастера
func (r *Repository) Create(ctx context.Context, s *domain.WizardSession) (*domain.WizardSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	stateJSON, err := json.Marshal(s.State)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal state: %v", ErrSerializeState, err)
	}

	query, args, err := psqlbuilder.Insert("wizard_sessions").
		Columns(
			"id",
			"operator_id",
			"state",
			"busy",
			"confirmed",
			"reservation_id",
		).
		Values(
			s.ID,
			s.OperatorID,
			stateJSON,
			s.Busy,
			s.Confirmed,
			s.ReservationID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает сессию мастера по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.WizardSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"operator_id",
		"state",
		"busy",
		"confirmed",
		"reservation_id",
		"created_at",
		"updated_at",
	).
		From("wizard_sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s         domain.WizardSession
		stateJSON []byte
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.OperatorID,
		&stateJSON,
		&s.Busy,
		&s.Confirmed,
		&s.ReservationID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(stateJSON, &s.State); err != nil {
		return nil, fmt.Errorf("%w: GetByID - unmarshal state: %v", ErrSerializeState, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// UpdateState сохраняет новый снимок состояния мастера
func (r *Repository) UpdateState(ctx context.Context, id string, state domain.BookingState) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - marshal state: %v", ErrSerializeState, err)
	}

	query, args, err := psqlbuilder.Update("wizard_sessions").
		Set("state", stateJSON).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateState - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// AcquireBusy взводит флаг занятости сессии
// Захват возможен только если сессия свободна и ещё не подтверждена:
// при конкурентном подтверждении второй вызов получит ErrSessionBusy
func (r *Repository) AcquireBusy(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("wizard_sessions").
		Set("busy", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "busy": false, "confirmed": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AcquireBusy - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: AcquireBusy - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: AcquireBusy - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionBusy
	}

	return nil
}

// ReleaseBusy снимает флаг занятости сессии
func (r *Repository) ReleaseBusy(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("wizard_sessions").
		Set("busy", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReleaseBusy - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReleaseBusy - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReleaseBusy - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Finalize помечает сессию подтверждённой: сохраняет идентификатор
// созданного бронирования и снимает флаг занятости
// Состояние мастера не сбрасывается - оператор явно начинает новую заявку
func (r *Repository) Finalize(ctx context.Context, id string, reservationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("wizard_sessions").
		Set("confirmed", true).
		Set("busy", false).
		Set("reservation_id", reservationID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Finalize - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Finalize - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Finalize - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Delete удаляет сессию мастера (физическое удаление)
// Используется при явном сбросе сессии оператором
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("wizard_sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
