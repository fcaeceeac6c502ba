package itinerary

import "errors"

var (
	// ErrReservationNotFound бронирование не найдено во внешнем сервисе
	ErrReservationNotFound = errors.New("itinerary: reservation not found")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("itinerary: internal error")
)
