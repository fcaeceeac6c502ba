package reservationservice

import (
	"bytes"
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

// Client клиент для работы с ReservationService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ReservationService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateReservation создает бронирование и возвращает его идентификатор
func (c *Client) CreateReservation(ctx context.Context, req *CreateReservationRequest) (int64, error) {
	url := fmt.Sprintf("%s/internal/reservations", c.baseURL)

	env, err := c.doJSON(ctx, http.MethodPost, url, req)
	if err != nil {
		return 0, err
	}

	var created CreatedReservation
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return 0, fmt.Errorf("%w: failed to decode reservation data: %v", ErrInvalidResponse, err)
	}

	c.log.Info("ReservationService: created reservation id=%d for client=%d", created.ID, req.ClientID)
	return created.ID, nil
}

// GetReservation получает бронирование по идентификатору
func (c *Client) GetReservation(ctx context.Context, id int64) (*Reservation, error) {
	url := fmt.Sprintf("%s/internal/reservations/%d", c.baseURL, id)

	env, err := c.doJSON(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var reservation Reservation
	if err := json.Unmarshal(env.Data, &reservation); err != nil {
		return nil, fmt.Errorf("%w: failed to decode reservation data: %v", ErrInvalidResponse, err)
	}

	return &reservation, nil
}

// UpdateReservation частично обновляет бронирование
func (c *Client) UpdateReservation(ctx context.Context, id int64, req *UpdateReservationRequest) error {
	url := fmt.Sprintf("%s/internal/reservations/%d", c.baseURL, id)

	_, err := c.doJSON(ctx, http.MethodPatch, url, req)
	if err != nil {
		return err
	}

	c.log.Info("ReservationService: updated reservation id=%d", id)
	return nil
}

// doJSON выполняет запрос и разбирает унифицированный конверт ответа
func (c *Client) doJSON(ctx context.Context, method, url string, payload interface{}) (*envelope, error) {
	var bodyReader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrReservationNotFound
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid reservation payload", ErrRejected)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !env.Success {
		msg := "no error message"
		if env.Error != nil {
			msg = *env.Error
		}
		return nil, fmt.Errorf("%w: %s", ErrRejected, msg)
	}

	return &env, nil
}
