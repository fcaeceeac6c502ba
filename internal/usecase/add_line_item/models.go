package add_line_item

import (
	"time"

	"github.com/m04kA/TourOperator-BookingService/internal/domain"
)

// Request модель запроса на добавление позиции в заявку
//
// Назначение полей зависит от категории:
//   - flight: StartDate - дата вылета, EndDate - обратный вылет (опционально),
//     Quantity - пассажиры, IsReturn - обратный рейс
//   - accommodation: StartDate - заезд, EndDate - выезд, Quantity - номера
//   - vehicle: StartDate/EndDate - период аренды, Quantity игнорируется
//     (количество дней выводится из периода)
//   - activity: StartDate - дата экскурсии, Quantity - участники
type Request struct {
	SessionID  string
	OperatorID int64

	Category  string // flight | accommodation | vehicle | activity
	ObjectID  int64  // идентификатор объекта в каталоге
	StartDate time.Time
	EndDate   *time.Time
	Quantity  int
	IsReturn  bool

	// Только для vehicle: откуда и куда, попадают в план поездки
	PickupLocation  string
	DropoffLocation string
}

// Response модель ответа с обновлённой сессией
// Warnings не блокируют добавление: оператор сам решает,
// насколько критично пограничное расписание
type Response struct {
	Session  *domain.WizardSession
	ItemID   string
	Price    float64
	Warnings []string
}
