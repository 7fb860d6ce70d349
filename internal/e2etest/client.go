package e2etest

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a cookie-carrying JSON client against the application's API.
type Client struct {
	client *http.Client
	url    string
	bearer string
}

// Credentials identify a test account created by Register.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// NewClient creates a client rooted at url with its own cookie jar.
func NewClient(url string) (*Client, error) {
	return &Client{
		client: &http.Client{Jar: newUnsafeCookieJar()},
		url:    url,
	}, nil
}

// UseBearer makes the client send the given token on every request instead of
// relying on the session cookie.
func (c *Client) UseBearer(token string) {
	c.bearer = token
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return fmt.Errorf("close response body: %w", err)
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return fmt.Errorf("close response body: %w", err)
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Do sends a request with an optional JSON body and decodes the JSON response
// into dst when dst is non-nil. It returns the response status code.
func (c *Client) Do(ctx context.Context, method, urlPath string, body, dst any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, reader)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if dst != nil {
		if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response body: %w", err)
		}
	}

	return resp.StatusCode, nil
}

// Get fetches urlPath and decodes the JSON response into dst when non-nil.
func (c *Client) Get(ctx context.Context, urlPath string, dst any) (int, error) {
	return c.Do(ctx, http.MethodGet, urlPath, nil, dst)
}

// Post sends body to urlPath and decodes the JSON response into dst when non-nil.
func (c *Client) Post(ctx context.Context, urlPath string, body, dst any) (int, error) {
	return c.Do(ctx, http.MethodPost, urlPath, body, dst)
}

// Put sends body to urlPath and decodes the JSON response into dst when non-nil.
func (c *Client) Put(ctx context.Context, urlPath string, body, dst any) (int, error) {
	return c.Do(ctx, http.MethodPut, urlPath, body, dst)
}

// Register creates a fresh account with random credentials and leaves the
// client logged in to it.
func (c *Client) Register(ctx context.Context) (Credentials, error) {
	suffix := strings.ToLower(rand.Text())
	creds := Credentials{
		Username: "user-" + suffix,
		Email:    "user-" + suffix + "@example.com",
		Password: "pw-" + rand.Text(),
	}

	status, err := c.Post(ctx, "/api/register", map[string]string{
		"username": creds.Username,
		"email":    creds.Email,
		"password": creds.Password,
	}, nil)
	if err != nil {
		return Credentials{}, fmt.Errorf("register: %w", err)
	}
	if status != http.StatusCreated {
		return Credentials{}, fmt.Errorf("unexpected status code: %d", status)
	}

	return creds, nil
}

// Login establishes a session for the given credentials.
func (c *Client) Login(ctx context.Context, creds Credentials) error {
	status, err := c.Post(ctx, "/api/login", map[string]string{
		"username": creds.Username,
		"password": creds.Password,
	}, nil)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", status)
	}
	return nil
}

// Logout destroys the session.
func (c *Client) Logout(ctx context.Context) error {
	status, err := c.Post(ctx, "/api/logout", nil, nil)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", status)
	}
	return nil
}
