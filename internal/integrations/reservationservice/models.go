package reservationservice

import "encoding/json"

// envelope унифицированный конверт ответа внешних сервисов
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *string         `json:"error,omitempty"`
}

// SubBookingPayload одна позиция заявки при создании бронирования
type SubBookingPayload struct {
	ObjectID  int64   `json:"objectId"`           // идентификатор объекта каталога
	StartDate string  `json:"startDate"`          // YYYY-MM-DD
	EndDate   *string `json:"endDate,omitempty"`  // YYYY-MM-DD, для позиций с одной датой отсутствует
	Quantity  int     `json:"quantity"`           // пассажиры/номера/участники/дни
	Price     float64 `json:"price"`              // зафиксированная цена позиции
	IsReturn  *bool   `json:"isReturn,omitempty"` // только для перелётов
}

// CreateReservationRequest запрос на создание бронирования
type CreateReservationRequest struct {
	ClientID       int64               `json:"clientId"`
	Status         string              `json:"status"`
	TotalAmount    float64             `json:"totalAmount"`
	Currency       string              `json:"currency"`
	StartDate      string              `json:"startDate"`
	EndDate        string              `json:"endDate"`
	Notes          *string             `json:"notes,omitempty"`
	Flights        []SubBookingPayload `json:"flights,omitempty"`
	Accommodations []SubBookingPayload `json:"accommodations,omitempty"`
	Vehicles       []SubBookingPayload `json:"vehicles,omitempty"`
	Activities     []SubBookingPayload `json:"activities,omitempty"`
}

// UpdateReservationRequest частичное обновление бронирования
type UpdateReservationRequest struct {
	Status      *string  `json:"status,omitempty"`
	TotalAmount *float64 `json:"totalAmount,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
}

// CreatedReservation ответ сервиса на создание бронирования
type CreatedReservation struct {
	ID int64 `json:"id"`
}

// Reservation бронирование, каким его возвращает ReservationService
//
// Коллекции позиций намеренно оставлены как json.RawMessage:
// их форма не гарантируется (бывают null, отсутствующие поля и не-массивы),
// поэтому разбором занимается валидирующий конструктор на стороне потребителя
type Reservation struct {
	ID             int64           `json:"id"`
	ClientID       int64           `json:"clientId"`
	Status         string          `json:"status"`
	TotalAmount    *float64        `json:"totalAmount,omitempty"`
	Currency       string          `json:"currency"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	Notes          *string         `json:"notes,omitempty"`
	Flights        json.RawMessage `json:"flights,omitempty"`
	Accommodations json.RawMessage `json:"accommodations,omitempty"`
	Vehicles       json.RawMessage `json:"vehicles,omitempty"`
	Activities     json.RawMessage `json:"activities,omitempty"`
}

// SubBooking позиция бронирования в типизированном виде
// Используется после успешного разбора RawMessage-коллекций
type SubBooking struct {
	ObjectID  int64   `json:"objectId"`
	Name      string  `json:"name,omitempty"`
	Location  string  `json:"location,omitempty"`
	StartDate string  `json:"startDate"`
	EndDate   *string `json:"endDate,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	IsReturn  *bool   `json:"isReturn,omitempty"`
}
