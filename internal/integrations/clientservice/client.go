package clientservice

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

// Client клиент для работы с ClientService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ClientService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateClient создает запись клиента и возвращает её идентификатор
func (c *Client) CreateClient(ctx context.Context, req *CreateClientRequest) (int64, error) {
	url := fmt.Sprintf("%s/internal/clients", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return 0, fmt.Errorf("%w: invalid client payload", ErrRejected)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !env.Success {
		msg := "no error message"
		if env.Error != nil {
			msg = *env.Error
		}
		return 0, fmt.Errorf("%w: %s", ErrRejected, msg)
	}

	var created CreatedClient
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return 0, fmt.Errorf("%w: failed to decode client data: %v", ErrInvalidResponse, err)
	}

	c.log.Info("ClientService: created client id=%d name=%s", created.ID, created.Name)
	return created.ID, nil
}
