// Package client talks to the MindfulLearner API over HTTP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"mindfullearner/internal/meditation"
	"mindfullearner/internal/models"
	"mindfullearner/internal/respond"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http *resty.Client
	now  func() time.Time

	mu    sync.RWMutex
	token string
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3001"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: cli, now: time.Now}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type signinResponse struct {
	models.User
	Token string `json:"token"`
}

// Signin exchanges credentials for a token and keeps it for later calls.
func (c *Client) Signin(ctx context.Context, username, password string) (models.User, error) {
	var out signinResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&out).
		Post("/api/auth/signin")
	if err != nil {
		return models.User{}, fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	c.SetToken(out.Token)
	return out.User, nil
}

// SubmitMeditation logs a finished session for today.
func (c *Client) SubmitMeditation(ctx context.Context, s meditation.Session) error {
	resp, err := c.authed(ctx).
		SetBody(map[string]any{
			"date":             models.FormatDate(c.now()),
			"duration_minutes": s.DurationMinutes,
			"notes":            s.Notes,
		}).
		Post("/api/health/meditation")
	if err != nil {
		return fmt.Errorf("meditation request: %w", err)
	}
	return mapHTTPError(resp)
}

// MeditationsOn lists the sessions logged on date.
func (c *Client) MeditationsOn(ctx context.Context, date string) ([]models.MeditationLog, error) {
	var out struct {
		Data []models.MeditationLog `json:"data"`
	}
	resp, err := c.authed(ctx).SetResult(&out).Get("/api/health/meditation/" + date)
	if err != nil {
		return nil, fmt.Errorf("meditation list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) authed(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx).SetAuthToken(c.Token())
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	reason := strings.TrimSpace(string(resp.Body()))
	var body respond.ErrorBody
	if json.Unmarshal(resp.Body(), &body) == nil && body.Error != "" {
		reason = body.Error
		if body.Field != "" {
			reason += " (" + body.Field + ")"
		}
	}

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, reason)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, reason)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, reason)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, reason)
	default:
		if code >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %s", ErrServer, reason)
		}
		return fmt.Errorf("http %d: %s", code, reason)
	}
}
