// Package client is the Go SDK for the Aura workspace service. It speaks
// the service's JSON API and mirrors its error taxonomy, so CLI and
// programmatic consumers share one surface.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/aura-workspace/aura/internal/model"
	"github.com/aura-workspace/aura/internal/notify"
	"github.com/aura-workspace/aura/internal/state"
)

// Client talks to one workspace service instance.
type Client struct {
	http *resty.Client
}

// New constructs a Client for the given base URL, e.g. "http://localhost:8990".
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second).
			SetHeader("Content-Type", "application/json"),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Health reports the service status string ("healthy" or "unhealthy").
func (c *Client) Health(ctx context.Context) (string, error) {
	var body struct {
		Status string `json:"status"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&body).Get("/api/health")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", apiError(resp)
	}
	return body.Status, nil
}

// GetState fetches the full workspace snapshot.
func (c *Client) GetState(ctx context.Context) (*state.AppState, error) {
	st := state.NewDefault()
	resp, err := c.http.R().SetContext(ctx).SetResult(st).Get("/api/state")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return st, nil
}

// GetCollection fetches one collection as raw JSON.
func (c *Client) GetCollection(ctx context.Context, name string) (json.RawMessage, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/state/" + name)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return json.RawMessage(resp.Body()), nil
}

// ReplaceCollection overwrites one collection with the given JSON value.
func (c *Client) ReplaceCollection(ctx context.Context, name string, value json.RawMessage) error {
	resp, err := c.http.R().SetContext(ctx).SetBody([]byte(value)).Put("/api/state/" + name)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// MergeCollection shallow-merges fields into an object collection.
func (c *Client) MergeCollection(ctx context.Context, name string, partial json.RawMessage) error {
	resp, err := c.http.R().SetContext(ctx).SetBody([]byte(partial)).Patch("/api/state/" + name)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Undo rolls back the most recent state change. It returns false when the
// history is already at its oldest snapshot.
func (c *Client) Undo(ctx context.Context) (bool, error) {
	var body struct {
		Undone bool `json:"undone"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&body).Post("/api/state/undo")
	if err != nil {
		return false, err
	}
	if resp.IsError() {
		return false, apiError(resp)
	}
	return body.Undone, nil
}

// Save persists the live state and returns the new last-save timestamp.
func (c *Client) Save(ctx context.Context) (string, error) {
	var body struct {
		LastSave string `json:"lastSave"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&body).Post("/api/save")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", apiError(resp)
	}
	return body.LastSave, nil
}

// LastSave returns the persisted last-save timestamp, empty when never saved.
func (c *Client) LastSave(ctx context.Context) (string, error) {
	var body struct {
		LastSave string `json:"lastSave"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&body).Get("/api/save/last")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", apiError(resp)
	}
	return body.LastSave, nil
}

// Export writes a backup file on the service host and returns its path.
func (c *Client) Export(ctx context.Context) (string, error) {
	var body struct {
		Path string `json:"path"`
	}
	resp, err := c.http.R().SetContext(ctx).SetResult(&body).Post("/api/backup/export")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", apiError(resp)
	}
	return body.Path, nil
}

// Import replaces the workspace with the given backup JSON. The confirm
// flag must be true; the service refuses the request otherwise.
func (c *Client) Import(ctx context.Context, backup []byte, confirm bool) error {
	req := c.http.R().SetContext(ctx).SetBody(backup)
	if confirm {
		req.SetQueryParam("confirm", "true")
	}
	resp, err := req.Post("/api/backup/import")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Clear wipes every stored collection and resets the workspace to defaults.
func (c *Client) Clear(ctx context.Context, confirm bool) error {
	req := c.http.R().SetContext(ctx)
	if confirm {
		req.SetQueryParam("confirm", "true")
	}
	resp, err := req.Delete("/api/data")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Notifications drains the pending notification queue.
func (c *Client) Notifications(ctx context.Context) ([]notify.Notification, error) {
	var pending []notify.Notification
	resp, err := c.http.R().SetContext(ctx).SetResult(&pending).Get("/api/notifications")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return pending, nil
}

// FocusStatus reports the focus timer state.
func (c *Client) FocusStatus(ctx context.Context) (map[string]interface{}, error) {
	var body map[string]interface{}
	resp, err := c.http.R().SetContext(ctx).SetResult(&body).Get("/api/focus")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return body, nil
}

// StartFocus begins a focus session; minutes <= 0 uses the service default.
func (c *Client) StartFocus(ctx context.Context, minutes int) error {
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]int{"minutes": minutes}).
		Post("/api/focus/start")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

func apiError(resp *resty.Response) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(resp.Body(), &body)
	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	switch resp.StatusCode() {
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", model.ErrUnknownCollection, msg)
	default:
		return fmt.Errorf("service returned %d: %s", resp.StatusCode(), msg)
	}
}
