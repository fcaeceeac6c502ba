package travelplanservice

import "errors"

var (
	// ErrPlanNotFound возвращается, когда план поездки для бронирования не найден
	ErrPlanNotFound = errors.New("travelplanservice client: travel plan not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("travelplanservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("travelplanservice client: invalid response")

	// ErrRejected возвращается, когда сервис ответил success=false
	ErrRejected = errors.New("travelplanservice client: request rejected")
)
