package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the storefront REST API. Every response is decoded into an
// explicit schema; shape mismatches surface as decode errors rather than
// silently dropping fields.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken attaches a bearer token to subsequent requests. An empty token
// clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Error is a server-reported failure carrying the API's message field.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a server-side 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Message string `json:"message"`
		}
		message := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
			message = envelope.Message
		}
		return &Error{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+id, nil, nil)
}

func (c *Client) CreateOrder(ctx context.Context, in CreateOrderRequest) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMyOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/mine", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PayOrder(ctx context.Context, id string, result PaymentResult) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPut, "/api/orders/"+id+"/pay", result, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeliverOrder(ctx context.Context, id string) (*Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPut, "/api/orders/"+id+"/deliver", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthUser, error) {
	in := registerRequest{Name: name, Email: email, Password: password}
	var out AuthUser
	if err := c.do(ctx, http.MethodPost, "/api/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthUser, error) {
	in := loginRequest{Email: email, Password: password}
	var out AuthUser
	if err := c.do(ctx, http.MethodPost, "/api/users/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PayPalClientID fetches the gateway client id used to load the payment SDK.
func (c *Client) PayPalClientID(ctx context.Context) (string, error) {
	var out string
	if err := c.do(ctx, http.MethodGet, "/api/config/paypal", nil, &out); err != nil {
		return "", err
	}
	return out, nil
}
