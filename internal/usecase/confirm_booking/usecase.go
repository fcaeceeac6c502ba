package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
	sessionRepo "github.com/m04kA/TourOperator-BookingService/internal/infra/storage/session"
	"github.com/m04kA/TourOperator-BookingService/internal/integrations/clientservice"
	"github.com/m04kA/TourOperator-BookingService/internal/integrations/reservationservice"
	"github.com/m04kA/TourOperator-BookingService/pkg/ptr"
)

// UseCase use case подтверждения заявки
//
// Последовательность строгая: клиент, затем бронирование, затем план поездки
// Отказ на первых двух шагах отменяет подтверждение целиком,
// неудача с планом только логируется
type UseCase struct {
	sessions          SessionRepository
	clientClient      ClientServiceClient
	reservationClient ReservationServiceClient
	planGenerator     PlanGenerator
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionRepository,
	clientClient ClientServiceClient,
	reservationClient ReservationServiceClient,
	planGenerator PlanGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:          sessions,
		clientClient:      clientClient,
		reservationClient: reservationClient,
		planGenerator:     planGenerator,
		logger:            logger,
	}
}

// Execute выполняет use case подтверждения заявки
//
// На время внешних вызовов сессия помечается занятой: конкурентные
// мутации и повторные подтверждения отклоняются, пока флаг взведён
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: session=%s, operator=%d", req.SessionID, req.OperatorID)

	// 1. Сессия и предусловия подтверждения
	session, err := uc.sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("ConfirmBooking: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to load session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: load session: %v", ErrInternal, err)
	}

	if session.OperatorID != req.OperatorID {
		uc.logger.Warn("ConfirmBooking: access denied for operator=%d to session=%s",
			req.OperatorID, req.SessionID)
		return nil, ErrAccessDenied
	}
	if session.Confirmed {
		uc.logger.Warn("ConfirmBooking: session=%s already confirmed", req.SessionID)
		return nil, ErrAlreadyConfirmed
	}
	if session.State.Client == nil {
		uc.logger.Warn("ConfirmBooking: session=%s has no client data", req.SessionID)
		return nil, ErrClientMissing
	}
	if !session.State.IsComplete() {
		uc.logger.Warn("ConfirmBooking: session=%s is incomplete, maxVisitedStep=%d",
			req.SessionID, session.State.MaxVisitedStep)
		return nil, ErrBookingIncomplete
	}

	// 2. Блокируем сессию на время внешних вызовов
	if err := uc.sessions.AcquireBusy(ctx, req.SessionID); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionBusy) {
			uc.logger.Warn("ConfirmBooking: session=%s is busy", req.SessionID)
			return nil, ErrSessionBusy
		}
		uc.logger.Error("ConfirmBooking: failed to lock session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: lock session: %v", ErrInternal, err)
	}

	// 3. Клиент: создаём запись, если её ещё нет
	clientID, err := uc.resolveClient(ctx, req.SessionID, &session.State)
	if err != nil {
		uc.release(ctx, req.SessionID)
		return nil, err
	}

	// 4. Бронирование со статусом pending: новое, либо обновление
	// исходного, если заявка целиком пришла из режима редактирования
	reservationID, err := uc.persistReservation(ctx, req.SessionID, clientID, &session.State)
	if err != nil {
		uc.release(ctx, req.SessionID)
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: reservation=%d persisted for session=%s, total=%.2f",
		reservationID, req.SessionID, session.State.TotalPrice)

	// 5. План поездки: по возможности, без отката подтверждения
	plan := uc.planGenerator.GenerateFromState(ctx, reservationID, session.State)

	// 6. Фиксируем подтверждение
	// Состояние мастера не сбрасывается: новую заявку оператор начинает явно
	if err := uc.sessions.Finalize(ctx, req.SessionID, reservationID); err != nil {
		uc.logger.Error("ConfirmBooking: failed to finalize session=%s after reservation=%d: %v",
			req.SessionID, reservationID, err)
		uc.release(ctx, req.SessionID)
		return nil, fmt.Errorf("%w: finalize session: %v", ErrInternal, err)
	}

	return &Response{
		ReservationID: reservationID,
		ClientID:      clientID,
		Plan:          plan,
	}, nil
}

// resolveClient возвращает идентификатор клиента, создавая запись
// в ClientService при необходимости. Успешно созданный идентификатор
// сразу сохраняется в состоянии сессии
func (uc *UseCase) resolveClient(ctx context.Context, sessionID string, state *domain.BookingState) (int64, error) {
	client := state.Client
	if client.ID != 0 {
		return client.ID, nil
	}

	id, err := uc.clientClient.CreateClient(ctx, &clientservice.CreateClientRequest{
		Name:         client.Name,
		Email:        client.Email,
		Phone:        client.Phone,
		Nationality:  client.Nationality,
		Address:      client.Address,
		PartySize:    client.PartySize,
		Notes:        client.Notes,
		Destinations: client.Destinations,
	})
	if err != nil {
		uc.logger.Error("ConfirmBooking: client creation failed for session=%s: %v", sessionID, err)
		return 0, fmt.Errorf("%w: %v", ErrClientCreateFailed, err)
	}

	uc.logger.Info("ConfirmBooking: client=%d created for session=%s", id, sessionID)

	client.ID = id
	if err := uc.sessions.UpdateState(ctx, sessionID, *state); err != nil {
		// Клиент уже создан, подтверждение продолжаем
		uc.logger.Warn("ConfirmBooking: failed to persist client id=%d in session=%s: %v",
			id, sessionID, err)
	}

	return id, nil
}

// persistReservation создаёт бронирование либо, когда каждая позиция
// заявки привязана к одному и тому же существующему бронированию
// (подтверждение после LOAD_RESERVATION без новых позиций), частично
// обновляет его. Смешанная заявка с новыми позициями создаёт новое
// бронирование: частичное обновление не умеет переносить позиции
func (uc *UseCase) persistReservation(ctx context.Context, sessionID string, clientID int64, state *domain.BookingState) (int64, error) {
	if src := sourceReservationID(state); src != nil {
		err := uc.reservationClient.UpdateReservation(ctx, *src, &reservationservice.UpdateReservationRequest{
			Status:      ptr.Ptr(string(domain.StatusPending)),
			TotalAmount: ptr.Ptr(state.TotalPrice),
			Notes:       state.Notes,
		})
		if err != nil {
			uc.logger.Error("ConfirmBooking: reservation update failed for session=%s, reservation=%d: %v",
				sessionID, *src, err)
			return 0, fmt.Errorf("%w: %v", ErrReservationUpdateFailed, err)
		}
		return *src, nil
	}

	id, err := uc.reservationClient.CreateReservation(ctx, buildReservationRequest(clientID, state))
	if err != nil {
		uc.logger.Error("ConfirmBooking: reservation creation failed for session=%s: %v", sessionID, err)
		return 0, fmt.Errorf("%w: %v", ErrReservationCreateFailed, err)
	}
	return id, nil
}

// sourceReservationID возвращает идентификатор исходного бронирования,
// если заявка непуста и каждая её позиция несёт один и тот же ReservationID
func sourceReservationID(state *domain.BookingState) *int64 {
	var src *int64

	collect := func(id *int64) bool {
		if id == nil {
			return false
		}
		if src == nil {
			src = id
			return true
		}
		return *src == *id
	}

	for i := range state.Flights {
		if !collect(state.Flights[i].ReservationID) {
			return nil
		}
	}
	for i := range state.Accommodations {
		if !collect(state.Accommodations[i].ReservationID) {
			return nil
		}
	}
	for i := range state.Vehicles {
		if !collect(state.Vehicles[i].ReservationID) {
			return nil
		}
	}
	for i := range state.Activities {
		if !collect(state.Activities[i].ReservationID) {
			return nil
		}
	}

	return src
}

func (uc *UseCase) release(ctx context.Context, sessionID string) {
	if err := uc.sessions.ReleaseBusy(ctx, sessionID); err != nil {
		uc.logger.Error("ConfirmBooking: failed to unlock session=%s: %v", sessionID, err)
	}
}

// buildReservationRequest собирает запрос на создание бронирования
// из состояния мастера: позиции группируются по категориям, цены
// берутся зафиксированными
func buildReservationRequest(clientID int64, state *domain.BookingState) *reservationservice.CreateReservationRequest {
	req := &reservationservice.CreateReservationRequest{
		ClientID:    clientID,
		Status:      string(domain.StatusPending),
		TotalAmount: state.TotalPrice,
		Currency:    state.Currency,
		StartDate:   state.TravelDates.Start.Format(domain.DateFormat),
		EndDate:     state.TravelDates.End.Format(domain.DateFormat),
		Notes:       state.Notes,
	}

	for _, f := range state.Flights {
		payload := reservationservice.SubBookingPayload{
			ObjectID:  f.FlightID,
			StartDate: f.DepartureDate.Format(domain.DateFormat),
			Quantity:  f.Passengers,
			Price:     f.Price,
			IsReturn:  ptr.Ptr(f.IsReturn),
		}
		if f.ReturnDate != nil {
			payload.EndDate = ptr.Ptr(f.ReturnDate.Format(domain.DateFormat))
		}
		req.Flights = append(req.Flights, payload)
	}

	for _, a := range state.Accommodations {
		req.Accommodations = append(req.Accommodations, reservationservice.SubBookingPayload{
			ObjectID:  a.AccommodationID,
			StartDate: a.CheckIn.Format(domain.DateFormat),
			EndDate:   ptr.Ptr(a.CheckOut.Format(domain.DateFormat)),
			Quantity:  a.Rooms,
			Price:     a.Price,
		})
	}

	for _, v := range state.Vehicles {
		req.Vehicles = append(req.Vehicles, reservationservice.SubBookingPayload{
			ObjectID:  v.VehicleID,
			StartDate: v.StartDate.Format(domain.DateFormat),
			EndDate:   ptr.Ptr(v.EndDate.Format(domain.DateFormat)),
			Quantity:  v.Days,
			Price:     v.Price,
		})
	}

	for _, act := range state.Activities {
		req.Activities = append(req.Activities, reservationservice.SubBookingPayload{
			ObjectID:  act.ActivityID,
			StartDate: act.Date.Format(domain.DateFormat),
			Quantity:  act.Participants,
			Price:     act.Price,
		})
	}

	return req
}
