package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.trello.com/1"
	// Trello allows 100 requests per 10 seconds per token.
	DefaultRateLimit = 10
	DefaultTimeout   = 30 * time.Second
)

// Config holds the credential pair and transport settings.
type Config struct {
	BaseURL    string
	Key        string
	Token      string
	RateLimit  float64 // requests per second, 0 disables pacing
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is the HTTP wrapper for the Trello REST API. Calls are blocking and
// never retried.
type Client struct {
	baseURL    string
	key        string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Trello HTTP client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Key == "" || cfg.Token == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		key:        cfg.Key,
		token:      cfg.Token,
		httpClient: httpClient,
		limiter:    limiter,
	}, nil
}

// GetBoards lists the boards of a member via GET /members/{user}/boards/.
func (c *Client) GetBoards(ctx context.Context, username string) ([]Board, error) {
	var boards []Board
	if err := c.get(ctx, fmt.Sprintf("/members/%s/boards/", url.PathEscape(username)), &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// GetLists lists the lists of a board via GET /boards/{id}/lists.
func (c *Client) GetLists(ctx context.Context, boardID string) ([]List, error) {
	var lists []List
	if err := c.get(ctx, fmt.Sprintf("/boards/%s/lists", url.PathEscape(boardID)), &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetCards lists the cards of a list via GET /lists/{id}/cards.
func (c *Client) GetCards(ctx context.Context, listID string) ([]Card, error) {
	var cards []Card
	if err := c.get(ctx, fmt.Sprintf("/lists/%s/cards", url.PathEscape(listID)), &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetStickers lists the stickers of a card via GET /cards/{id}/stickers.
func (c *Client) GetStickers(ctx context.Context, cardID string) ([]Sticker, error) {
	var stickers []Sticker
	if err := c.get(ctx, fmt.Sprintf("/cards/%s/stickers", url.PathEscape(cardID)), &stickers); err != nil {
		return nil, err
	}
	return stickers, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("trello rate limiter: %w", err)
		}
	}

	query := url.Values{}
	query.Set("key", c.key)
	query.Set("token", c.token)
	fullURL := c.baseURL + path + "?" + query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build trello request %s: %w", path, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call trello %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Path: path, Body: strings.TrimSpace(string(raw))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode trello %s response: %w", path, err)
	}
	return nil
}
