package load_reservation

import "github.com/m04kA/TourOperator-BookingService/internal/domain"

// Request модель запроса на загрузку бронирования в сессию (режим редактирования)
type Request struct {
	SessionID     string
	OperatorID    int64
	ReservationID int64
}

// Response модель ответа с гидратированной сессией
// Warnings перечисляют поля бронирования, которые не удалось разобрать
// и которые были сведены к пустым значениям
type Response struct {
	Session  *domain.WizardSession
	Warnings []string
}
