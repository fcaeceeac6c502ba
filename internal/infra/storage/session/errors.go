package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrSessionBusy возвращается, когда сессия занята подтверждением
	// и не может быть захвачена повторно
	ErrSessionBusy = errors.New("session.repository: session is busy")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("session.repository: failed to scan row")

	// ErrSerializeState возвращается при ошибке сериализации состояния мастера
	ErrSerializeState = errors.New("session.repository: failed to serialize state")
)
