package catalogservice

import "errors"

var (
	// ErrNotFound возвращается, когда объект каталога не найден
	ErrNotFound = errors.New("catalogservice client: catalog object not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrRejected возвращается, когда сервис ответил success=false
	ErrRejected = errors.New("catalogservice client: request rejected")
)
