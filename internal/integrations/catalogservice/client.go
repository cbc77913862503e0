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

// Client клиент для работы с каталогом маркетплейса (CatalogService)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStore получает автосервис по ID
func (c *Client) GetStore(ctx context.Context, storeID int64) (*Store, error) {
	url := fmt.Sprintf("%s/internal/stores/%d", c.baseURL, storeID)

	var store Store
	if err := c.getJSON(ctx, url, &store, ErrStoreNotFound); err != nil {
		return nil, err
	}

	return &store, nil
}

// GetService получает услугу автосервиса по ID
func (c *Client) GetService(ctx context.Context, storeID, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/stores/%d/services/%d", c.baseURL, storeID, serviceID)

	var service Service
	if err := c.getJSON(ctx, url, &service, ErrServiceNotFound); err != nil {
		return nil, err
	}

	return &service, nil
}

// getJSON выполняет GET-запрос и декодирует JSON-ответ
// notFoundErr возвращается при статусе 404
func (c *Client) getJSON(ctx context.Context, url string, out interface{}, notFoundErr error) error {
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

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
