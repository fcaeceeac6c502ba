package add_line_item

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("add_line_item: session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому оператору
	ErrAccessDenied = errors.New("add_line_item: access denied")

	// ErrSessionBusy возвращается, когда сессия занята подтверждением
	ErrSessionBusy = errors.New("add_line_item: session is busy")

	// ErrSessionConfirmed возвращается при попытке изменить подтверждённую заявку
	ErrSessionConfirmed = errors.New("add_line_item: booking already confirmed")

	// ErrObjectNotFound возвращается, когда объект каталога не найден
	ErrObjectNotFound = errors.New("add_line_item: catalog object not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_line_item: invalid input data")

	// ErrDatesOutOfWindow возвращается, когда даты позиции нарушают период поездки
	// Детали нарушений перечислены в тексте обёрнутой ошибки через "; "
	ErrDatesOutOfWindow = errors.New("add_line_item: dates violate travel window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_line_item: internal error")
)
