// Package apiclient is a typed client for the campus API. Per-resource
// loaders stamp every reload with a monotonically increasing request id
// and drop any response that is no longer the latest issued, so a burst
// of reloads can never commit a stale result.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// SetToken stores the session token used on authenticated calls.
func (c *Client) SetToken(token string) { c.token = token }

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	var res LoginResult
	if err := c.post(ctx, "/api/auth/login", bytes.NewReader(body), &res); err != nil {
		return nil, err
	}
	c.token = res.Token
	return &res, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var res struct {
		User User `json:"user"`
	}
	if err := c.get(ctx, "/api/auth/me", nil, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

// Logout is best-effort on the server side; the important part is the
// client dropping its token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.post(ctx, "/api/auth/logout", nil, nil)
	c.token = ""
	return err
}

type NewsItem struct {
	ID        string    `json:"id"`
	TitleZh   string    `json:"title_zh"`
	TitleEn   string    `json:"title_en"`
	ExcerptZh string    `json:"excerpt_zh"`
	ExcerptEn string    `json:"excerpt_en"`
	ImageURL  string    `json:"image_url"`
	Date      time.Time `json:"date"`
}

func (c *Client) News(ctx context.Context, limit int, search string) ([]NewsItem, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if search != "" {
		q.Set("search", search)
	}
	var items []NewsItem
	if err := c.get(ctx, "/api/news", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type Ranking struct {
	ID         string `json:"id"`
	TitleZh    string `json:"title_zh"`
	TitleEn    string `json:"title_en"`
	Value      string `json:"value"`
	SourceName string `json:"source_name"`
	Order      int    `json:"order"`
}

// Rankings fetches the public top-3 strip. The endpoint predates the
// response envelope and returns the bare array.
func (c *Client) Rankings(ctx context.Context) ([]Ranking, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/rankings/public", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, &APIError{Status: resp.StatusCode, Message: resp.Status}
	}
	var items []Ranking
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return items, nil
}

type LiveUpdate struct {
	ID       string `json:"id"`
	TextZh   string `json:"text_zh"`
	TextEn   string `json:"text_en"`
	Priority string `json:"priority"`
}

func (c *Client) LiveUpdates(ctx context.Context, limit int, priority string) ([]LiveUpdate, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if priority != "" {
		q.Set("priority", priority)
	}
	var items []LiveUpdate
	if err := c.get(ctx, "/api/live-updates", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}
