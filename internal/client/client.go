// Package client реализует слой синхронизации с REST API сервиса обращений.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shenikar/service_desk/internal/config"
	"github.com/sirupsen/logrus"
)

// Client выполняет HTTP-запросы к API и возвращает ответ вместе с метаданными
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает новый Client
func NewClient(cfg *config.ClientConfig, logger *logrus.Logger) *Client {
	return &Client{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Endpoint возвращает базовый адрес API
func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) url(path string, query url.Values) string {
	u := c.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do выполняет запрос. decode вызывается только для успешного ответа с непустым телом.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any, decode func(io.Reader) error) (int, http.Header, error) {
	target := c.url(path, query)
	log := c.logger.WithFields(logrus.Fields{
		"client": "service_desk",
		"method": method,
		"url":    target,
	})

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("client: failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, nil, fmt.Errorf("client: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	log.Debug("Sending request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Debug("Request failed")
		return 0, nil, fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	log = log.WithField("status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		log.Debug("Request returned error status")
		return resp.StatusCode, resp.Header, &HTTPError{
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       raw,
		}
	}
	log.Debug("Request completed")

	if decode == nil || resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, resp.Header, nil
	}
	if err := decode(resp.Body); err != nil && !errors.Is(err, io.EOF) {
		return resp.StatusCode, resp.Header, fmt.Errorf("client: failed to decode response: %w", err)
	}
	return resp.StatusCode, resp.Header, nil
}

// send выполняет запрос и декодирует JSON-тело ответа в T
func send[T any](ctx context.Context, c *Client, method, path string, query url.Values, payload any) (*Response[T], error) {
	var body T
	status, header, err := c.do(ctx, method, path, query, payload, func(r io.Reader) error {
		return json.NewDecoder(r).Decode(&body)
	})
	if err != nil {
		return nil, err
	}
	return &Response[T]{StatusCode: status, Header: header, Body: body}, nil
}

// sendEmpty выполняет запрос, тело ответа которого не используется
func sendEmpty(ctx context.Context, c *Client, method, path string) (*Response[struct{}], error) {
	status, header, err := c.do(ctx, method, path, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Response[struct{}]{StatusCode: status, Header: header}, nil
}
