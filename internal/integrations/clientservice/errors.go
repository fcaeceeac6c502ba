package clientservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clientservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("clientservice client: invalid response")

	// ErrRejected возвращается, когда сервис ответил success=false
	ErrRejected = errors.New("clientservice client: request rejected")
)
