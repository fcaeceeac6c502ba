package domain

import "time"

// ReservationStatus статус бронирования во внешнем сервисе бронирований
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// BookingClient данные клиента тура и его поездки
type BookingClient struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Nationality  string
	Address      string
	PartySize    int
	Destinations []string
	Notes        *string
}

// DateRange период поездки либо период отдельной услуги
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Subtotals промежуточные суммы по категориям услуг
type Subtotals struct {
	Flights        float64
	Accommodations float64
	Vehicles       float64
	Activities     float64
}

// Sum возвращает сумму всех промежуточных итогов
func (s Subtotals) Sum() float64 {
	return s.Flights + s.Accommodations + s.Vehicles + s.Activities
}

// FlightItem позиция перелёта в заявке
// Price всегда кратна Passengers: цена фиксируется как цена за пассажира × количество
type FlightItem struct {
	ID            string // локальный идентификатор позиции (uuid)
	FlightID      int64  // идентификатор рейса в каталоге
	Airline       string
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    *time.Time
	Passengers    int
	Price         float64
	IsReturn      bool // обратный рейс, используется при сборке плана поездки
	ReservationID *int64
}

// AccommodationItem позиция проживания в заявке
// Ночь относится к дню D, если CheckIn <= D < CheckOut (полуоткрытый интервал)
type AccommodationItem struct {
	ID              string
	AccommodationID int64
	Name            string
	Location        string
	CheckIn         time.Time
	CheckOut        time.Time
	Rooms           int
	Price           float64
	ReservationID   *int64
}

// VehicleItem позиция аренды транспорта в заявке
type VehicleItem struct {
	ID              string
	VehicleID       int64
	Model           string
	PickupLocation  string
	DropoffLocation string
	StartDate       time.Time
	EndDate         time.Time
	Days            int
	Price           float64
	ReservationID   *int64
}

// ActivityItem позиция экскурсии/активности в заявке
type ActivityItem struct {
	ID            string
	ActivityID    int64
	Title         string
	Location      string
	Date          time.Time
	Participants  int
	DurationHours float64
	Price         float64
	ReservationID *int64
}

// BookingState состояние мастера оформления заявки
// Единственный изменяемый корень, принадлежит одной сессии оператора
// TotalPrice никогда не хранится отдельно от Subtotals - всегда пересчитывается
type BookingState struct {
	CurrentStep    int
	VisitedSteps   []int
	MaxVisitedStep int

	Client *BookingClient

	Flights        []FlightItem
	Accommodations []AccommodationItem
	Vehicles       []VehicleItem
	Activities     []ActivityItem

	Subtotals  Subtotals
	TotalPrice float64

	TravelDates DateRange
	Currency    string
	Notes       *string
}

// NewBookingState возвращает начальное состояние мастера:
// шаг 1, посещён только шаг 1, период поездки - сегодня .. сегодня+7 дней
func NewBookingState(now time.Time) BookingState {
	today := DateOnly(now)
	return BookingState{
		CurrentStep:    1,
		VisitedSteps:   []int{1},
		MaxVisitedStep: 1,
		Flights:        []FlightItem{},
		Accommodations: []AccommodationItem{},
		Vehicles:       []VehicleItem{},
		Activities:     []ActivityItem{},
		TravelDates: DateRange{
			Start: today,
			End:   today.AddDate(0, 0, DefaultTravelWindowDays),
		},
		Currency: DefaultCurrency,
	}
}

// HasVisited возвращает true, если шаг уже был посещён
func (s *BookingState) HasVisited(step int) bool {
	for _, v := range s.VisitedSteps {
		if v == step {
			return true
		}
	}
	return false
}

// IsComplete возвращает true, если пройдены все шаги мастера
// и заявка готова к подтверждению
func (s *BookingState) IsComplete() bool {
	return s.MaxVisitedStep >= TotalSteps && len(s.VisitedSteps) >= TotalSteps
}

// ItemCount возвращает общее число позиций во всех категориях
func (s *BookingState) ItemCount() int {
	return len(s.Flights) + len(s.Accommodations) + len(s.Vehicles) + len(s.Activities)
}

// DateOnly обнуляет время, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что две даты относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
