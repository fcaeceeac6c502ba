package reservationservice

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservationservice client: reservation not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reservationservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("reservationservice client: invalid response")

	// ErrRejected возвращается, когда сервис ответил success=false
	ErrRejected = errors.New("reservationservice client: request rejected")
)
