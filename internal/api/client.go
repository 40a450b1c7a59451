package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"subgrip/internal/domain"
)

// Client talks to the subscription server's management API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL. token may be empty
// when the server runs without authentication.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the server address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Settings(ctx context.Context) (*domain.Settings, error) {
	var resp domain.Settings
	if err := c.doJSON(ctx, http.MethodGet, "/api/settings", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SaveSettings(ctx context.Context, settings *domain.Settings) error {
	if settings == nil {
		return errors.New("settings are required")
	}
	return c.doJSON(ctx, http.MethodPut, "/api/settings", settings, nil)
}

func (c *Client) Subscriptions(ctx context.Context) ([]domain.Subscription, error) {
	var resp SubscriptionsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/subscriptions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Subscriptions, nil
}

func (c *Client) CreateSubscription(ctx context.Context, sub domain.Subscription) (*domain.Subscription, error) {
	var resp domain.Subscription
	if err := c.doJSON(ctx, http.MethodPost, "/api/subscriptions", sub, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// refreshTimeout allows for the server fetching a slow upstream.
const refreshTimeout = 30 * time.Second

// RefreshSubscription asks the server to re-fetch one subscription and
// returns it with its post-refresh status.
func (c *Client) RefreshSubscription(ctx context.Context, id string) (*domain.Subscription, error) {
	var resp domain.Subscription
	path := fmt.Sprintf("/api/subscriptions/%s/refresh", id)
	if err := c.doJSONWithTimeout(ctx, http.MethodPost, path, nil, &resp, refreshTimeout); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteSubscriptions(ctx context.Context, ids []string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/subscriptions/delete", idsRequest{IDs: ids}, nil)
}

func (c *Client) Nodes(ctx context.Context) ([]domain.Node, error) {
	var resp NodesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/nodes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Nodes, nil
}

func (c *Client) CreateNode(ctx context.Context, node domain.Node) (*domain.Node, error) {
	var resp domain.Node
	if err := c.doJSON(ctx, http.MethodPost, "/api/nodes", node, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteNodes(ctx context.Context, ids []string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/nodes/delete", idsRequest{IDs: ids}, nil)
}

// SetEnabled flips the enabled flag on subscriptions or nodes.
func (c *Client) SetEnabled(ctx context.Context, kind domain.ItemKind, ids []string, enabled bool) error {
	req := enableRequest{Kind: kind, IDs: ids, Enabled: enabled}
	return c.doJSON(ctx, http.MethodPost, "/api/items/enable", req, nil)
}

// MoveToProfile assigns subscriptions or nodes to a profile. An empty
// profile name removes the assignment.
func (c *Client) MoveToProfile(ctx context.Context, kind domain.ItemKind, ids []string, profile string) error {
	req := moveRequest{Kind: kind, IDs: ids, Profile: profile}
	return c.doJSON(ctx, http.MethodPost, "/api/items/move", req, nil)
}

func (c *Client) Profiles(ctx context.Context) ([]domain.Profile, error) {
	var resp ProfilesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/profiles", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Profiles, nil
}

func (c *Client) CreateProfile(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("profile name is required")
	}
	return c.doJSON(ctx, http.MethodPost, "/api/profiles", profileRequest{Name: name}, nil)
}

func (c *Client) RenameProfile(ctx context.Context, oldName, newName string) error {
	if strings.TrimSpace(newName) == "" {
		return errors.New("profile name is required")
	}
	req := renameProfileRequest{OldName: oldName, NewName: newName}
	return c.doJSON(ctx, http.MethodPost, "/api/profiles/rename", req, nil)
}

func (c *Client) DeleteProfile(ctx context.Context, name string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/profiles/delete", profileRequest{Name: name}, nil)
}

// Export renders share links for the given items. format may be empty to
// use the server default.
func (c *Client) Export(ctx context.Context, kind domain.ItemKind, ids []string, format string) (string, error) {
	var resp ExportResponse
	req := ExportRequest{Kind: kind, IDs: ids, Format: format}
	if err := c.doJSONWithTimeout(ctx, http.MethodPost, "/api/export", req, &resp, refreshTimeout); err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	return c.doJSONWithClient(ctx, method, path, body, out, c.http)
}

func (c *Client) doJSONWithTimeout(ctx context.Context, method, path string, body any, out any, timeout time.Duration) error {
	client := c.http
	if timeout > 0 {
		client = &http.Client{
			Timeout:   timeout,
			Transport: c.http.Transport,
		}
	}
	return c.doJSONWithClient(ctx, method, path, body, out, client)
}

func (c *Client) doJSONWithClient(ctx context.Context, method, path string, body any, out any, httpClient *http.Client) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
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

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	type errorPayload struct {
		Error string `json:"error"`
	}
	var payload errorPayload
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	if payload.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
}

// APIError is a non-2xx response from the management API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// AsAPIError unwraps err into an APIError, or nil if it isn't one.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
