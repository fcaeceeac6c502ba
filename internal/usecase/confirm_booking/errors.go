package confirm_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("confirm_booking: session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому оператору
	ErrAccessDenied = errors.New("confirm_booking: access denied")

	// ErrSessionBusy возвращается при повторном подтверждении, пока
	// предыдущее ещё выполняется
	ErrSessionBusy = errors.New("confirm_booking: confirmation already in progress")

	// ErrAlreadyConfirmed возвращается, когда заявка уже подтверждена
	ErrAlreadyConfirmed = errors.New("confirm_booking: booking already confirmed")

	// ErrBookingIncomplete возвращается, когда пройдены не все шаги мастера
	ErrBookingIncomplete = errors.New("confirm_booking: booking is incomplete")

	// ErrClientMissing возвращается, когда в заявке нет данных клиента
	ErrClientMissing = errors.New("confirm_booking: client data is missing")

	// ErrClientCreateFailed возвращается при отказе ClientService
	// Бронирование при этом не создаётся
	ErrClientCreateFailed = errors.New("confirm_booking: client creation failed")

	// ErrReservationCreateFailed возвращается при отказе ReservationService
	ErrReservationCreateFailed = errors.New("confirm_booking: reservation creation failed")

	// ErrReservationUpdateFailed возвращается при отказе ReservationService
	// обновить существующее бронирование в режиме редактирования
	ErrReservationUpdateFailed = errors.New("confirm_booking: reservation update failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
