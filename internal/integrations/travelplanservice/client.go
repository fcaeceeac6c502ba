package travelplanservice

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

// Client клиент для работы с TravelPlanService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента TravelPlanService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateTravelPlan сохраняет план поездки и возвращает его идентификатор
func (c *Client) CreateTravelPlan(ctx context.Context, plan *TravelPlanPayload) (int64, error) {
	url := fmt.Sprintf("%s/internal/travel-plans", c.baseURL)

	env, err := c.doJSON(ctx, http.MethodPost, url, plan)
	if err != nil {
		return 0, err
	}

	var created CreatedPlan
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return 0, fmt.Errorf("%w: failed to decode plan data: %v", ErrInvalidResponse, err)
	}

	c.log.Info("TravelPlanService: created plan id=%d for reservation=%d", created.ID, plan.ReservationID)
	return created.ID, nil
}

// GetByReservation получает сохранённый план поездки по идентификатору бронирования
func (c *Client) GetByReservation(ctx context.Context, reservationID int64) (*TravelPlanPayload, error) {
	url := fmt.Sprintf("%s/internal/reservations/%d/travel-plan", c.baseURL, reservationID)

	env, err := c.doJSON(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var plan TravelPlanPayload
	if err := json.Unmarshal(env.Data, &plan); err != nil {
		return nil, fmt.Errorf("%w: failed to decode plan data: %v", ErrInvalidResponse, err)
	}

	return &plan, nil
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
		return nil, ErrPlanNotFound
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
