// Package httpx is the client's HTTP layer. It attaches the session token
// as a bearer credential to every request, decodes the backend's
// {code,message,data} envelope, and handles the unauthorized case by
// forcing a logout.
//
// No request is ever retried; a failure surfaces once, as an error and a
// single user-visible dialog.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/moonui/moonui/internal/common"
	"github.com/moonui/moonui/internal/logging"
)

const (
	requestTimeout = 10 * time.Second

	msgNetworkFailure = "network request failed, please check your connection"
)

type Client struct {
	http    *http.Client
	baseURL string
	session SessionControl
	dialog  ErrorDialog
	log     logging.Logger
}

func New(baseURL string, session SessionControl, dialog ErrorDialog, log logging.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: baseURL,
		session: session,
		dialog:  dialog,
		log:     log,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.call(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodDelete, path, nil, out)
}

// call runs the request and owns the dialog policy: the unauthorized path
// shows its dialog inside do, so it must not be followed by a second one
// here for the same failure.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	err := c.do(ctx, method, path, body, out)
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrSessionExpired) {
		return err
	}
	if dErr := c.dialog.Error(ctx, msgNetworkFailure); dErr != nil {
		c.log.Error(ctx, "failed to show error dialog", "error", dErr)
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if env.Code != http.StatusOK && env.Code != 0 {
		if env.Code == http.StatusUnauthorized {
			return c.handleUnauthorized(ctx)
		}
		if env.Message == "" {
			return fmt.Errorf("request failed with code %d", env.Code)
		}
		return errors.New(env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// handleUnauthorized clears the session and tells the user once.
func (c *Client) handleUnauthorized(ctx context.Context) error {
	c.log.Warn(ctx, "server reported unauthorized, clearing session")
	c.session.Logout(ctx)
	if err := c.dialog.Error(ctx, common.ErrSessionExpired.Error()); err != nil {
		c.log.Error(ctx, "failed to show error dialog", "error", err)
	}
	return common.ErrSessionExpired
}
