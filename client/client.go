package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/EkeminiThompson/ecommerce/models"
)

// DefaultTimeout matches the storefront's request timeout.
const DefaultTimeout = 5 * time.Second

// APIError is a failure response decoded from the server's error envelope,
// which carries either a message or an error field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client calls the Closet Cater API. The base URL and per-endpoint paths
// are fixed at construction; the bearer credential comes from the Session.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

func New(baseURL string, timeout time.Duration, session *Session) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		session: session,
	}
}

// Session exposes the injected session for callers that render identity.
func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeError prefers message over error, the same order the storefront
// reads the envelope in.
func decodeError(resp *http.Response) error {
	var envelope struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	msg := "request failed"
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		if envelope.Message != "" {
			msg = envelope.Message
		} else if envelope.Err != "" {
			msg = envelope.Err
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

// ListProducts fetches the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products, false); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &product, false)
	return product, err
}

// CreateProduct creates a product; requires an admin session.
func (c *Client) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodPost, "/api/products", input, &product, true)
	return product, err
}

// UpdateProduct replaces a product's fields; requires an admin session.
func (c *Client) UpdateProduct(ctx context.Context, id uint, input models.ProductInput) (models.Product, error) {
	var product models.Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), input, &product, true)
	return product, err
}

type loginResponse struct {
	Token string `json:"token"`
	AdminInfo
}

// Login exchanges credentials for a bearer token and signs the session in.
// On failure the session is left untouched.
func (c *Client) Login(ctx context.Context, email, password string) (AdminInfo, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp, false); err != nil {
		return AdminInfo{}, err
	}
	if err := c.session.SignIn(resp.Token, resp.AdminInfo); err != nil {
		return AdminInfo{}, err
	}
	return resp.AdminInfo, nil
}

// CreateAdmin registers a new admin identity.
func (c *Client) CreateAdmin(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, nil, false)
}

// Logout clears the session.
func (c *Client) Logout() error {
	return c.session.SignOut()
}

// CreateOrderInput is the order payload sent by the client.
type CreateOrderInput struct {
	Items           []models.OrderItem     `json:"orderItems"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
}

// CreateOrder places an order for the signed-in user.
func (c *Client) CreateOrder(ctx context.Context, input CreateOrderInput) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, http.MethodPost, "/api/orders", input, &order, true)
	return order, err
}

// GetOrder fetches one of the caller's orders.
func (c *Client) GetOrder(ctx context.Context, id uint) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &order, true)
	return order, err
}

// PayOrder confirms payment of an order.
func (c *Client) PayOrder(ctx context.Context, id uint, result models.PaymentResult) (models.Order, error) {
	var order models.Order
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d/pay", id), result, &order, true)
	return order, err
}

// MyOrders lists the caller's orders.
func (c *Client) MyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/myorders", nil, &orders, true); err != nil {
		return nil, err
	}
	return orders, nil
}
