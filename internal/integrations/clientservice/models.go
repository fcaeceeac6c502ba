package clientservice

import "encoding/json"

// envelope унифицированный конверт ответа внешних сервисов
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *string         `json:"error,omitempty"`
}

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Nationality  string   `json:"nationality"`
	Address      string   `json:"address"`
	PartySize    int      `json:"partySize"`
	Notes        *string  `json:"notes,omitempty"`
	Destinations []string `json:"destinations,omitempty"`
}

// CreatedClient модель клиента из ответа ClientService
type CreatedClient struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
}
