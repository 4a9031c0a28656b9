package gateway

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
	"time"

	"go.uber.org/zap"

	"tirona-thrift/internal/logger"
	"tirona-thrift/internal/metrics"
	"tirona-thrift/internal/order"
	"tirona-thrift/internal/product"
)

const (
	defaultTimeout   = 10 * time.Second
	maxErrorBodySize = 4 << 10
)

// TokenSource supplies the admin bearer token. An empty token means "send no Authorization header".
type TokenSource interface {
	Token() (string, error)
}

// Client talks to the storefront REST backend. It never falls back; see Fallback for that.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every request, including reading the response body.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) GetProducts(ctx context.Context) ([]product.Product, error) {
	var products []product.Product
	err := c.do(ctx, "GetProducts", http.MethodGet, "/products", nil, false, &products)
	return products, err
}

func (c *Client) GetOrders(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	err := c.do(ctx, "GetOrders", http.MethodGet, "/orders", nil, false, &orders)
	return orders, err
}

func (c *Client) CreateOrder(ctx context.Context, params order.CreateOrderParams) (order.Order, error) {
	var o order.Order
	err := c.do(ctx, "CreateOrder", http.MethodPost, "/orders", params, false, &o)
	return o, err
}

func (c *Client) UpdateProduct(ctx context.Context, p product.Product) (product.Product, error) {
	var updated product.Product
	path := "/products/" + url.PathEscape(p.ID)
	err := c.do(ctx, "UpdateProduct", http.MethodPut, path, p, true, &updated)
	return updated, err
}

func (c *Client) UpdateOrder(ctx context.Context, id string, status order.Status) error {
	body := map[string]order.Status{"status": status}
	return c.do(ctx, "UpdateOrder", http.MethodPut, "/orders/"+url.PathEscape(id), body, true, nil)
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges the admin passphrase for a session token.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var res loginResponse
	body := map[string]string{"password": password}
	err := c.do(ctx, "Login", http.MethodPost, "/admin/login", body, false, &res)
	if err != nil {
		if code := StatusCode(err); code == http.StatusUnauthorized || code == http.StatusForbidden {
			return "", &FetchError{Op: "Login", Endpoint: "/admin/login", StatusCode: code, Err: ErrInvalidCredentials}
		}
		return "", err
	}
	if res.Token == "" {
		return "", &FetchError{Op: "Login", Endpoint: "/admin/login", StatusCode: http.StatusOK, Err: ErrEmptyToken}
	}
	return res.Token, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, in any, authenticated bool, out any) error {
	log := logger.FromCtx(ctx).With(
		zap.String("op", op),
		zap.String("method", method),
		zap.String("endpoint", path),
	)
	fail := func(status int, err error) error {
		return &FetchError{Op: op, Endpoint: path, StatusCode: status, Err: err}
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fail(0, fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fail(0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if reqID := logger.RequestIDFrom(ctx); reqID != "" {
		req.Header.Set(logger.RequestIDHeader, reqID)
	}

	if authenticated && c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return fail(0, err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	timer := metrics.StartTimer()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("request failed", zap.Duration("duration", timer.Duration()), zap.Error(err))
		return fail(0, err)
	}
	defer resp.Body.Close()

	log = log.With(zap.Int("status", resp.StatusCode), zap.Duration("duration", timer.Duration()))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		log.Debug("non-success status")
		return fail(resp.StatusCode, errors.New(strings.TrimSpace(string(msg))))
	}
	log.Debug("request completed")

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
