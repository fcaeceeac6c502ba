package load_reservation

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("load_reservation: session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому оператору
	ErrAccessDenied = errors.New("load_reservation: access denied")

	// ErrSessionBusy возвращается, когда сессия занята подтверждением
	ErrSessionBusy = errors.New("load_reservation: session is busy")

	// ErrSessionConfirmed возвращается при попытке загрузки в подтверждённую сессию
	ErrSessionConfirmed = errors.New("load_reservation: booking already confirmed")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("load_reservation: reservation not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("load_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("load_reservation: internal error")
)
