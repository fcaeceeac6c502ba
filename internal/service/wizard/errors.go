package wizard

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("wizard: session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому оператору
	ErrAccessDenied = errors.New("wizard: access denied")

	// ErrSessionBusy возвращается, когда сессия занята подтверждением
	// Пока идёт подтверждение, мутирующие действия не принимаются
	ErrSessionBusy = errors.New("wizard: session is busy")

	// ErrSessionConfirmed возвращается при попытке изменить подтверждённую заявку
	// Для новой заявки оператор явно открывает новую сессию
	ErrSessionConfirmed = errors.New("wizard: booking already confirmed")

	// ErrInvalidAction возвращается при неизвестном типе действия
	ErrInvalidAction = errors.New("wizard: invalid action type")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("wizard: internal error")
)
