package confirm_booking

import "github.com/m04kA/TourOperator-BookingService/internal/domain"

// Request модель запроса на подтверждение заявки
type Request struct {
	SessionID  string
	OperatorID int64
}

// Response модель ответа с результатом подтверждения
// Plan может отсутствовать: построение плана поездки выполняется
// по возможности и его неудача подтверждение не отменяет
type Response struct {
	ReservationID int64
	ClientID      int64
	Plan          *domain.TravelPlan
}
