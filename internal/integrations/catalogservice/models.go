package catalogservice

import "encoding/json"

// envelope унифицированный конверт ответа внешних сервисов
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *string         `json:"error,omitempty"`
}

// Flight рейс из каталога
type Flight struct {
	ID                int64   `json:"id"`
	Airline           string  `json:"airline"`
	Origin            string  `json:"origin"`
	Destination       string  `json:"destination"`
	PricePerPassenger float64 `json:"pricePerPassenger"`
	Currency          string  `json:"currency,omitempty"`
}

// Accommodation объект размещения из каталога
type Accommodation struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"pricePerNight"`
	Currency      string  `json:"currency,omitempty"`
}

// Vehicle транспорт из каталога
type Vehicle struct {
	ID          int64   `json:"id"`
	Model       string  `json:"model"`
	PricePerDay float64 `json:"pricePerDay"`
	Currency    string  `json:"currency,omitempty"`
}

// Activity экскурсия/активность из каталога
type Activity struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Location       string  `json:"location"`
	PricePerPerson float64 `json:"pricePerPerson"`
	DurationHours  float64 `json:"durationHours"`
	Currency       string  `json:"currency,omitempty"`
}
