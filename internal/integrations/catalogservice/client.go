package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с каталогами услуг (рейсы, размещение, транспорт, активности)
// Каталоги read-only: используются для фиксации цены позиции в момент добавления
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталогов
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetFlight получает рейс из каталога
func (c *Client) GetFlight(ctx context.Context, id int64) (*Flight, error) {
	var flight Flight
	if err := c.get(ctx, fmt.Sprintf("%s/internal/catalog/flights/%d", c.baseURL, id), &flight); err != nil {
		return nil, err
	}
	return &flight, nil
}

// GetAccommodation получает объект размещения из каталога
func (c *Client) GetAccommodation(ctx context.Context, id int64) (*Accommodation, error) {
	var accommodation Accommodation
	if err := c.get(ctx, fmt.Sprintf("%s/internal/catalog/accommodations/%d", c.baseURL, id), &accommodation); err != nil {
		return nil, err
	}
	return &accommodation, nil
}

// GetVehicle получает транспорт из каталога
func (c *Client) GetVehicle(ctx context.Context, id int64) (*Vehicle, error) {
	var vehicle Vehicle
	if err := c.get(ctx, fmt.Sprintf("%s/internal/catalog/vehicles/%d", c.baseURL, id), &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetActivity получает активность из каталога
func (c *Client) GetActivity(ctx context.Context, id int64) (*Activity, error) {
	var activity Activity
	if err := c.get(ctx, fmt.Sprintf("%s/internal/catalog/activities/%d", c.baseURL, id), &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// get выполняет GET-запрос и разбирает унифицированный конверт ответа
func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return ErrNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !env.Success {
		msg := "no error message"
		if env.Error != nil {
			msg = *env.Error
		}
		return fmt.Errorf("%w: %s", ErrRejected, msg)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode catalog data: %v", ErrInvalidResponse, err)
	}

	return nil
}
